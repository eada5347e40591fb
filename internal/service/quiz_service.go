package service

import (
	"trivia_quiz_backend/internal/model"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/util"
	"trivia_quiz_backend/pkg/logger"

	"go.uber.org/zap"
)

type QuizService struct {
	Repo *repository.QuestionRepository
}

func NewQuizService(repo *repository.QuestionRepository) *QuizService {
	return &QuizService{Repo: repo}
}

// RandomQuestion 随机抽取一道题，题库为空时第二个返回值为 false
func (s *QuizService) RandomQuestion() (model.Question, bool) {
	return s.Repo.PickRandom()
}

// Submit 对指定题目判定一次作答，题目不存在时返回 ErrQuestionNotFound
func (s *QuizService) Submit(id, answerText string) (*model.Submission, error) {
	q, ok := s.Repo.FindByID(id)
	if !ok {
		return nil, util.ErrQuestionNotFound
	}

	verdict, graded := GradeSubmission(q.Answers, ParseSubmittedAnswers(answerText))

	logger.Log.Debug("submission graded",
		zap.String("questionId", q.ID),
		zap.String("verdict", string(verdict)),
		zap.Int("answers", len(graded)),
	)

	return &model.Submission{
		Question: q,
		Answers:  graded,
		Verdict:  verdict,
	}, nil
}
