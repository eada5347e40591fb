package controller

import (
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Repo *repository.QuestionRepository
}

func NewHealthController(repo *repository.QuestionRepository) *HealthController {
	return &HealthController{Repo: repo}
}

// HealthCheck 服务健康检查，附带当前题库规模
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":    "ok",
		"questions": c.Repo.Count(),
	})
}
