package controller

import (
	"errors"
	"html/template"
	"net/http"

	"trivia_quiz_backend/internal/service"
	"trivia_quiz_backend/internal/util"
	"trivia_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(s *service.QuizService) *QuizController {
	return &QuizController{Service: s}
}

// ShowQuiz 随机出一道题并渲染作答表单。
// 题库为空不是错误，渲染一条纯文本提示即可。
func (c *QuizController) ShowQuiz(ctx *gin.Context) {
	q, ok := c.Service.RandomQuestion()
	if !ok {
		ctx.String(http.StatusOK, "no questions available")
		return
	}

	ctx.HTML(http.StatusOK, "quiz.html", gin.H{
		"question":  q,
		"submitted": "",
	})
}

// SubmitQuiz 判定一次作答，并在同一道题的表单上回显提交内容、
// 逐答案反馈和整体判定结果
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	id := ctx.PostForm("id")
	answer := ctx.PostForm("answer")

	result, err := c.Service.Submit(id, answer)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			ctx.String(http.StatusNotFound, "invalid question")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.GradedSubmissions.WithLabelValues(string(result.Verdict)).Inc()

	ctx.HTML(http.StatusOK, "quiz.html", gin.H{
		"question":  result.Question,
		"submitted": answer,
		"feedback":  template.HTML(util.DecorateAll(result.Answers)),
		"verdict":   string(result.Verdict),
	})
}
