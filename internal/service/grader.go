package service

import (
	"strings"

	"trivia_quiz_backend/internal/model"
)

// ParseSubmittedAnswers 把用户输入按逗号拆分，去掉每段首尾空白并丢弃空串。
// 返回顺序与输入顺序一致（用于回显），顺序对判定本身没有意义。
func ParseSubmittedAnswers(text string) []string {
	parts := strings.Split(text, ",")
	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			answers = append(answers, p)
		}
	}
	return answers
}

// GradeSubmission 对一组提交答案做三选一判定，同时给出每个答案的独立对错标记。
//
// 判定为 Correct 采用严格的集合相等规则：提交答案两两不同（忽略大小写）、
// 每个提交答案都命中正确答案、每个正确答案都被命中、且数量相等。
// 重复提交同一个正确答案不能填满多个空位。
// 命中至少一个但不满足上述条件时为 Partially Correct，一个都没命中
// （包括空提交）为 Incorrect。
// 比较忽略大小写，除拆分时的去空白外不做其它归一化，不做模糊匹配。
func GradeSubmission(accepted, submitted []string) (model.Verdict, []model.GradedAnswer) {
	acceptedSet := make(map[string]bool, len(accepted))
	for _, a := range accepted {
		acceptedSet[strings.ToLower(a)] = true
	}

	graded := make([]model.GradedAnswer, 0, len(submitted))
	seen := make(map[string]bool, len(submitted))
	matched := make(map[string]bool, len(accepted))
	anyHit := false
	allHit := true
	duplicate := false

	for _, s := range submitted {
		folded := strings.ToLower(s)
		hit := acceptedSet[folded]
		graded = append(graded, model.GradedAnswer{Text: s, Correct: hit})

		if hit {
			anyHit = true
			matched[folded] = true
		} else {
			allHit = false
		}
		if seen[folded] {
			duplicate = true
		}
		seen[folded] = true
	}

	switch {
	case anyHit && allHit && !duplicate &&
		len(matched) == len(acceptedSet) && len(submitted) == len(acceptedSet):
		return model.VerdictCorrect, graded
	case anyHit:
		return model.VerdictPartial, graded
	default:
		return model.VerdictIncorrect, graded
	}
}
