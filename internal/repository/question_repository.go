package repository

import (
	"math/rand"
	"sync"

	"trivia_quiz_backend/internal/model"
)

// QuestionRepository 内存题库，按插入顺序保存题目。
// 只支持整体替换和追加，不支持更新或删除。
// 原型是单线程模型，这里加一把小读写锁保证并发安全，
// 不提供跨请求的一致性保证。
type QuestionRepository struct {
	mu        sync.RWMutex
	questions []model.Question
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{}
}

// LoadAll 用种子数据整体替换题库内容，每条记录分配新的唯一 ID
func (r *QuestionRepository) LoadAll(entries []model.SeedEntry) {
	questions := make([]model.Question, 0, len(entries))
	for _, e := range entries {
		questions = append(questions, model.Question{
			ID:       model.GenerateUUID(),
			Question: e.Question,
			Genre:    e.Genre,
			Answers:  append([]string(nil), e.Answers...),
		})
	}

	r.mu.Lock()
	r.questions = questions
	r.mu.Unlock()
}

// Add 追加一道新题目并返回存储后的记录。重复题干不做拒绝。
func (r *QuestionRepository) Add(question, genre string, answers []string) model.Question {
	q := model.Question{
		ID:       model.GenerateUUID(),
		Question: question,
		Genre:    genre,
		Answers:  append([]string(nil), answers...),
	}

	r.mu.Lock()
	r.questions = append(r.questions, q)
	r.mu.Unlock()
	return q
}

// All 返回当前题目的快照，保持插入顺序
func (r *QuestionRepository) All() []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Question(nil), r.questions...)
}

// FindByID 按 ID 线性查找
func (r *QuestionRepository) FindByID(id string) (model.Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.questions {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

// PickRandom 等概率随机抽取一道题，题库为空时第二个返回值为 false
func (r *QuestionRepository) PickRandom() (model.Question, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.questions) == 0 {
		return model.Question{}, false
	}
	return r.questions[rand.Intn(len(r.questions))], true
}

func (r *QuestionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}
