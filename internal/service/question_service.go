package service

import (
	"strings"

	"trivia_quiz_backend/internal/model"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/util"
	"trivia_quiz_backend/pkg/logger"

	"go.uber.org/zap"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

// Search 过滤题目列表。query 为空时原样返回全部题目；
// 否则保留题干、类别或任一正确答案包含 query 子串（忽略大小写）的题目，
// 结果顺序与题库插入顺序一致，不做排序。
func (s *QuestionService) Search(query string) []model.Question {
	all := s.Repo.All()
	if query == "" {
		return all
	}

	folded := strings.ToLower(query)
	result := make([]model.Question, 0, len(all))
	for _, q := range all {
		if questionMatches(q, folded) {
			result = append(result, q)
		}
	}
	return result
}

func questionMatches(q model.Question, foldedQuery string) bool {
	if strings.Contains(strings.ToLower(q.Question), foldedQuery) ||
		strings.Contains(strings.ToLower(q.Genre), foldedQuery) {
		return true
	}
	for _, a := range q.Answers {
		if strings.Contains(strings.ToLower(a), foldedQuery) {
			return true
		}
	}
	return false
}

// Create 解析并校验表单输入后追加一道新题目。
// answers 为逗号分隔串，按与作答相同的规则拆分、去空白并丢弃空段。
func (s *QuestionService) Create(question, genre, answersCSV string) (model.Question, error) {
	question = strings.TrimSpace(question)
	genre = strings.TrimSpace(genre)

	if question == "" {
		return model.Question{}, util.ErrEmptyQuestion
	}
	answers := ParseSubmittedAnswers(answersCSV)
	if len(answers) == 0 {
		return model.Question{}, util.ErrNoAnswers
	}

	q := s.Repo.Add(question, genre, answers)
	logger.Log.Info("question added",
		zap.String("questionId", q.ID),
		zap.String("genre", q.Genre),
		zap.Int("answers", len(q.Answers)),
	)
	return q, nil
}
