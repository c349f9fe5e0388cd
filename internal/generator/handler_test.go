package generator_test

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/generator"
	"github.com/practico-app/practico-lambda/internal/middlewares"
	"github.com/practico-app/practico-lambda/internal/test"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "a-long-and-sufficiently-random-test-secret")
	auth.Init()
	os.Exit(m.Run())
}

func newTestServer(store *fakeTestService) http.Handler {
	var tests test.TestService
	if store != nil {
		tests = store
	}
	svc := generator.NewService(tests, rand.New(rand.NewSource(1)))
	h := generator.NewHandler(svc)
	return middlewares.CorsMiddleware(generator.Routes(h))
}

func TestGenerateEndpointCORSPreflight(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://practico.example")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	allowed := rec.Header().Get("Access-Control-Allow-Headers")
	for _, h := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
		if !strings.Contains(allowed, h) {
			t.Errorf("Access-Control-Allow-Headers %q is missing %q", allowed, h)
		}
	}
}

func TestGenerateEndpointSuccess(t *testing.T) {
	srv := newTestServer(nil)

	body := `{"examType":"ssc-cgl","topic":"Quantitative Aptitude","numQuestions":5}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("response is missing permissive CORS header, got %q", got)
	}

	var payload struct {
		Questions []generator.Question `json:"questions"`
		Message   string               `json:"message"`
		TestID    *string              `json:"testId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(payload.Questions) != 5 {
		t.Errorf("got %d questions, want 5", len(payload.Questions))
	}
	if payload.Message != "Test generated successfully" {
		t.Errorf("message = %q", payload.Message)
	}
	if payload.TestID != nil {
		t.Errorf("testId should be null for anonymous requests, got %v", *payload.TestID)
	}
}

func TestGenerateEndpointValidation(t *testing.T) {
	srv := newTestServer(nil)

	body := `{"examType":"ssc-cgl","numQuestions":5}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var payload generator.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("error response is not valid JSON: %v", err)
	}
	if payload.Error != "Missing required parameter: topic" {
		t.Errorf("error = %q", payload.Error)
	}
	if payload.Message != "Failed to generate test questions" {
		t.Errorf("message = %q", payload.Message)
	}
}

func TestGenerateEndpointMalformedBody(t *testing.T) {
	srv := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"numQuestions": "ten"`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var payload generator.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("error response is not valid JSON: %v", err)
	}
	if !strings.HasPrefix(payload.Error, "Invalid request format") {
		t.Errorf("error = %q, want an invalid-format message", payload.Error)
	}
}

func TestGenerateEndpointSavesForAuthenticatedCaller(t *testing.T) {
	store := &fakeTestService{}
	srv := newTestServer(store)

	token, err := auth.GenerateJWT("5f9c1b2e-8a4d-4e2f-9c3b-1a2b3c4d5e6f", "user", time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	body := `{"examType":"neet","topic":"Human Physiology","numQuestions":2,"saveToDatabase":true}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var payload struct {
		TestID *string `json:"testId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if payload.TestID == nil {
		t.Fatal("testId should be set after a successful save")
	}
	if store.created == nil || store.created.ID.String() != *payload.TestID {
		t.Error("testId does not match the persisted record")
	}
}
