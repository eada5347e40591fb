package controller

import (
	"net/http"

	"trivia_quiz_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(s *service.QuestionService) *QuestionController {
	return &QuestionController{Service: s}
}

// ListQuestions 题库浏览与搜索，search 为空时展示全部
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	search := ctx.Query("search")
	questions := c.Service.Search(search)

	ctx.HTML(http.StatusOK, "questions.html", gin.H{
		"questions": questions,
		"search":    search,
	})
}

// CreateQuestion 新增题目。成功后重定向回列表页，
// 浏览器刷新不会重复提交表单。
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	_, err := c.Service.Create(
		ctx.PostForm("question"),
		ctx.PostForm("genre"),
		ctx.PostForm("answers"),
	)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/questions")
}
