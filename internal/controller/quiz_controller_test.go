package controller

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"trivia_quiz_backend/internal/model"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/service"
	"trivia_quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// 测试里用极简模板替代 templates/ 下的页面，内容用分号分段便于断言
func newTestRouter(repo *repository.QuestionRepository) *gin.Engine {
	router := gin.New()

	tmpl := template.Must(template.New("quiz.html").Parse(
		`Q:{{ .question.Question }};ID:{{ .question.ID }}{{ if .verdict }};V:{{ .verdict }};F:{{ .feedback }}{{ end }}`))
	template.Must(tmpl.New("questions.html").Parse(
		`S:{{ .search }};{{ range .questions }}[{{ .Question }}]{{ end }}`))
	router.SetHTMLTemplate(tmpl)

	quiz := NewQuizController(service.NewQuizService(repo))
	question := NewQuestionController(service.NewQuestionService(repo))
	health := NewHealthController(repo)

	router.GET("/quiz", quiz.ShowQuiz)
	router.POST("/quiz", quiz.SubmitQuiz)
	router.GET("/questions", question.ListQuestions)
	router.POST("/questions", question.CreateQuestion)
	router.GET("/health", health.HealthCheck)
	return router
}

func seededRepo() *repository.QuestionRepository {
	repo := repository.NewQuestionRepository()
	repo.LoadAll([]model.SeedEntry{
		{Question: "What is 2 + 2?", Genre: "math", Answers: []string{"4", "four"}},
		{Question: "What is the capital of France?", Genre: "geography", Answers: []string{"Paris"}},
	})
	return repo
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShowQuiz_EmptyRepository(t *testing.T) {
	router := newTestRouter(repository.NewQuestionRepository())

	w := get(router, "/quiz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "no questions available" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestShowQuiz_RendersQuestionForm(t *testing.T) {
	router := newTestRouter(seededRepo())

	w := get(router, "/quiz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Q:What is") {
		t.Errorf("body missing question text: %q", body)
	}
	if strings.Contains(body, ";V:") {
		t.Errorf("fresh form should carry no verdict: %q", body)
	}
}

func TestSubmitQuiz(t *testing.T) {
	repo := seededRepo()
	mathID := repo.All()[0].ID

	tests := []struct {
		name     string
		answer   string
		verdict  string
		feedback string
	}{
		{"correct", "4, four", ";V:Correct;", `class="correct"`},
		{"correct reversed", "four, 4", ";V:Correct;", `class="correct"`},
		{"duplicate answer", "4,4", ";V:Partially Correct;", `class="correct"`},
		{"wrong answer", "five", ";V:Incorrect;", `class="incorrect"`},
		{"blank answer", "  ", ";V:Incorrect;", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(repo)
			w := postForm(router, "/quiz", url.Values{"id": {mathID}, "answer": {tc.answer}})
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, tc.verdict) {
				t.Errorf("body missing verdict %q: %q", tc.verdict, body)
			}
			if tc.feedback != "" && !strings.Contains(body, tc.feedback) {
				t.Errorf("body missing feedback marker %q: %q", tc.feedback, body)
			}
		})
	}
}

func TestSubmitQuiz_UnknownID(t *testing.T) {
	router := newTestRouter(seededRepo())

	w := postForm(router, "/quiz", url.Values{"id": {"no-such-id"}, "answer": {"4"}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if w.Body.String() != "invalid question" {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestListQuestions_Search(t *testing.T) {
	router := newTestRouter(seededRepo())

	w := get(router, "/questions?search=math")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "S:math;") {
		t.Errorf("search text not echoed: %q", body)
	}
	if !strings.Contains(body, "[What is 2 + 2?]") {
		t.Errorf("matching question missing: %q", body)
	}
	if strings.Contains(body, "capital of France") {
		t.Errorf("non-matching question present: %q", body)
	}
}

func TestCreateQuestion_RedirectsAfterPost(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo)
	before := repo.Count()

	w := postForm(router, "/questions", url.Values{
		"question": {"Q"},
		"genre":    {"G"},
		"answers":  {"a, b ,,c"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/questions" {
		t.Errorf("redirect location = %q", loc)
	}
	if repo.Count() != before+1 {
		t.Errorf("repository count = %d, want %d", repo.Count(), before+1)
	}
}

func TestCreateQuestion_RejectsInvalidInput(t *testing.T) {
	repo := seededRepo()
	router := newTestRouter(repo)
	before := repo.Count()

	w := postForm(router, "/questions", url.Values{
		"question": {""},
		"genre":    {"G"},
		"answers":  {"a"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank question: status = %d, want 400", w.Code)
	}

	w = postForm(router, "/questions", url.Values{
		"question": {"Q"},
		"genre":    {"G"},
		"answers":  {" , "},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty answers: status = %d, want 400", w.Code)
	}

	if repo.Count() != before {
		t.Errorf("invalid input mutated repository: count = %d", repo.Count())
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(seededRepo())

	w := get(router, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"questions":2`) {
		t.Errorf("health body missing question count: %q", body)
	}
}
