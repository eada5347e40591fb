package util

import (
	"html"
	"strings"

	"trivia_quiz_backend/internal/model"
)

// Decorate 给单个答案包上对错标记，供模板直接渲染样式。
// 纯函数，只负责展示包装，不含任何判定逻辑。
func Decorate(answer string, correct bool) string {
	class := "incorrect"
	if correct {
		class = "correct"
	}
	return `<span class="` + class + `">` + html.EscapeString(answer) + `</span>`
}

// DecorateAll 渲染整组作答反馈，以 ", " 连接
func DecorateAll(answers []model.GradedAnswer) string {
	parts := make([]string, 0, len(answers))
	for _, a := range answers {
		parts = append(parts, Decorate(a.Text, a.Correct))
	}
	return strings.Join(parts, ", ")
}
