package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:             "8080",
		Env:              "dev",
		CORSAllowOrigins: []string{"http://localhost:5173"},
		FormatRatePerSec: 100,
		FormatBurst:      100,
	}
}

func TestRouterHealth(t *testing.T) {
	r := NewRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body: %s", resp.Body.String())
	}
}

func TestRouterServesFormatEndpoint(t *testing.T) {
	r := NewRouter(testConfig())

	body := strings.NewReader(`{"name":"Jane Doe","templateStyle":"Classic"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/format", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Jane Doe") {
		t.Fatalf("expected formatted resume in response: %s", resp.Body.String())
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header")
	}
}

func TestRouterServesFormPageAndMetrics(t *testing.T) {
	r := NewRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for form page, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Generate Resume") {
		t.Fatal("expected form page content")
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for metrics, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "format_requests_total") {
		t.Fatal("expected format metrics")
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9090":  ":9090",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
