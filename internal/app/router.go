package app

import (
	"net/http"

	"trivia_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/quiz")
	})

	// 答题
	router.GET("/quiz", c.quiz.ShowQuiz)
	router.POST("/quiz", c.quiz.SubmitQuiz)

	// 题库浏览与维护
	router.GET("/questions", c.question.ListQuestions)
	router.POST("/questions", c.question.CreateQuestion)
}
