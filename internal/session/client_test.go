package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/practico-app/practico-lambda/internal/generator"
	"github.com/practico-app/practico-lambda/internal/session"
)

func TestClientGenerate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/generate-test" {
				t.Errorf("path = %q, want /generate-test", r.URL.Path)
			}
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"questions":[{"id":1,"text":"q","options":["a","b","c","d"],"correctAnswer":2,"explanation":"e"}],"message":"Test generated successfully","testId":null}`))
		}))
		defer srv.Close()

		client := session.NewClient(srv.URL, "token-abc")
		questions, err := client.Generate(context.Background(), generator.GenerateRequest{
			ExamType: "upsc-cse", Topic: "Polity", NumQuestions: 1,
		})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(questions) != 1 || questions[0].CorrectAnswer != 2 {
			t.Errorf("unexpected questions %+v", questions)
		}
		if gotAuth != "Bearer token-abc" {
			t.Errorf("Authorization = %q", gotAuth)
		}
	})

	t.Run("ServerValidationError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Missing required parameter: topic","message":"Failed to generate test questions"}`))
		}))
		defer srv.Close()

		client := session.NewClient(srv.URL, "")
		_, err := client.Generate(context.Background(), generator.GenerateRequest{ExamType: "x", NumQuestions: 1})
		if err == nil {
			t.Fatal("want an error for a 400 response")
		}
		if !strings.Contains(err.Error(), "Missing required parameter: topic") {
			t.Errorf("server message should be surfaced verbatim, got %v", err)
		}
	})

	t.Run("MalformedSuccessBody", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"ok"}`))
		}))
		defer srv.Close()

		client := session.NewClient(srv.URL, "")
		_, err := client.Generate(context.Background(), generator.GenerateRequest{ExamType: "x", Topic: "y", NumQuestions: 1})
		if err == nil {
			t.Fatal("a success body without questions must be an error")
		}
	})

	t.Run("TransportFailure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		client := session.NewClient(srv.URL, "")
		_, err := client.Generate(context.Background(), generator.GenerateRequest{ExamType: "x", Topic: "y", NumQuestions: 1})
		if err == nil {
			t.Fatal("want an error when the endpoint is unreachable")
		}
	})
}
