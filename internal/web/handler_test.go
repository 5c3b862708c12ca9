package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/resumes"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(Templates())
	NewHandler(resumes.NewService()).RegisterRoutes(router)
	return router
}

func TestIndexShowsForm(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{
		`name="name"`,
		`name="email"`,
		`name="phone"`,
		`name="skills"`,
		`name="experience"`,
		`name="education"`,
		`name="templateStyle"`,
		">Classic<",
		">Modern<",
		">Creative<",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}
}

func TestGenerateRendersResume(t *testing.T) {
	router := setupRouter()

	form := url.Values{}
	form.Set("name", "Jane Doe")
	form.Set("email", "jane@x.com")
	form.Set("phone", "555-1234")
	form.Set("skills", "Python, SQL, Go")
	form.Set("experience", "Engineer at Acme")
	form.Set("education", "BSc CS")
	form.Set("templateStyle", "Modern")

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{"Jane Doe", "SKILLS", "- Python", "Engineer at Acme", "BSc CS"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
	if !strings.Contains(body, `value="Python, SQL, Go"`) {
		t.Fatal("expected form values echoed back")
	}
}

func TestGenerateEscapesHTMLInFields(t *testing.T) {
	router := setupRouter()

	form := url.Values{}
	form.Set("name", "<script>alert(1)</script>")

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	body := resp.Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Fatal("expected field values to be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Fatal("expected escaped script tag in output")
	}
}

func TestGenerateReportsMissingFields(t *testing.T) {
	router := setupRouter()

	form := url.Values{}
	form.Set("name", "Jane Doe")

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	body := resp.Body.String()
	if !strings.Contains(body, "Left blank: email, phone, skills, experience, education") {
		t.Fatalf("expected missing field hint, got:\n%s", body)
	}
}
