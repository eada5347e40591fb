package service

import (
	"reflect"
	"testing"

	"trivia_quiz_backend/internal/model"
)

func TestParseSubmittedAnswers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"4", []string{"4"}},
		{"4, four", []string{"4", "four"}},
		{"a, b ,,c", []string{"a", "b", "c"}},
		{"  spaced  ", []string{"spaced"}},
		{",,,", []string{}},
		{"", []string{}},
		{"   ", []string{}},
	}

	for _, tc := range tests {
		got := ParseSubmittedAnswers(tc.input)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseSubmittedAnswers(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestGradeSubmission_Verdicts(t *testing.T) {
	accepted := []string{"4", "four"}

	tests := []struct {
		name      string
		submitted []string
		want      model.Verdict
	}{
		{"all answers both orders", []string{"4", "four"}, model.VerdictCorrect},
		{"all answers reversed", []string{"four", "4"}, model.VerdictCorrect},
		{"case insensitive", []string{"FOUR", "4"}, model.VerdictCorrect},
		{"duplicate of one correct answer", []string{"4", "4"}, model.VerdictPartial},
		{"only one of two", []string{"4"}, model.VerdictPartial},
		{"one hit one miss", []string{"4", "five"}, model.VerdictPartial},
		{"all hit plus extra miss", []string{"4", "four", "five"}, model.VerdictPartial},
		{"no hits", []string{"five"}, model.VerdictIncorrect},
		{"empty submission", nil, model.VerdictIncorrect},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, graded := GradeSubmission(accepted, tc.submitted)
			if got != tc.want {
				t.Errorf("GradeSubmission(%v, %v) = %q, want %q", accepted, tc.submitted, got, tc.want)
			}
			if len(graded) != len(tc.submitted) {
				t.Errorf("graded list has %d entries, want %d", len(graded), len(tc.submitted))
			}
		})
	}
}

func TestGradeSubmission_SingleAnswer(t *testing.T) {
	accepted := []string{"Paris"}

	tests := []struct {
		submitted []string
		want      model.Verdict
	}{
		{[]string{"Paris"}, model.VerdictCorrect},
		{[]string{"paris"}, model.VerdictCorrect},
		{[]string{"PARIS"}, model.VerdictCorrect},
		{[]string{"London"}, model.VerdictIncorrect},
		{[]string{"Paris", "London"}, model.VerdictPartial},
		{[]string{"Paris", "paris"}, model.VerdictPartial},
	}

	for _, tc := range tests {
		got, _ := GradeSubmission(accepted, tc.submitted)
		if got != tc.want {
			t.Errorf("GradeSubmission(%v, %v) = %q, want %q", accepted, tc.submitted, got, tc.want)
		}
	}
}

// 逐答案标记独立于整体判定：部分正确时命中的答案仍标记为对
func TestGradeSubmission_PerAnswerFlags(t *testing.T) {
	verdict, graded := GradeSubmission([]string{"4", "four"}, []string{"4", "five"})
	if verdict != model.VerdictPartial {
		t.Fatalf("verdict = %q, want %q", verdict, model.VerdictPartial)
	}

	want := []model.GradedAnswer{
		{Text: "4", Correct: true},
		{Text: "five", Correct: false},
	}
	if !reflect.DeepEqual(graded, want) {
		t.Errorf("graded = %v, want %v", graded, want)
	}
}

func TestGradeSubmission_EmptyYieldsEmptyGradedList(t *testing.T) {
	verdict, graded := GradeSubmission([]string{"4"}, ParseSubmittedAnswers("  ,  , "))
	if verdict != model.VerdictIncorrect {
		t.Errorf("verdict = %q, want %q", verdict, model.VerdictIncorrect)
	}
	if len(graded) != 0 {
		t.Errorf("graded list not empty: %v", graded)
	}
}

// 回显顺序与提交顺序一致
func TestGradeSubmission_PreservesSubmissionOrder(t *testing.T) {
	_, graded := GradeSubmission([]string{"red", "green", "blue"}, []string{"blue", "red", "green"})
	got := make([]string, 0, len(graded))
	for _, g := range graded {
		got = append(got, g.Text)
	}
	if !reflect.DeepEqual(got, []string{"blue", "red", "green"}) {
		t.Errorf("graded order = %v", got)
	}
}
