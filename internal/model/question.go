package model

import "github.com/google/uuid"

// Question 一道题目：题干、类别和可接受的正确答案集合。
// 题目创建后不可修改，ID 在进程生命周期内唯一且不复用。
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Genre    string   `json:"genre"`
	Answers  []string `json:"answers"`
}

// SeedEntry 种子文件（JSON 数组）中的一条记录。
// 种子里即使带有 id 字段也会被忽略，加载时统一重新生成。
type SeedEntry struct {
	Question string   `json:"question"`
	Genre    string   `json:"genre"`
	Answers  []string `json:"answers"`
}

// Verdict 一次作答的整体判定结果
type Verdict string

const (
	VerdictCorrect   Verdict = "Correct"
	VerdictPartial   Verdict = "Partially Correct"
	VerdictIncorrect Verdict = "Incorrect"
)

// GradedAnswer 单个提交答案及其独立判定（与整体判定无关）
type GradedAnswer struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Submission 一次作答的完整判定结果
type Submission struct {
	Question Question       `json:"question"`
	Answers  []GradedAnswer `json:"answers"`
	Verdict  Verdict        `json:"verdict"`
}

func GenerateUUID() string {
	return uuid.New().String()
}
