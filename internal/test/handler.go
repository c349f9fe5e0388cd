package test

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/config"
)

type Handler struct {
	service TestService
}

func NewHandler(s TestService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tests, err := h.service.ListTestsByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list tests")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, tests)
}

func (h *Handler) GetTest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	testID := chi.URLParam(r, "id")
	if testID == "" {
		http.Error(w, "test id required", http.StatusBadRequest)
		return
	}

	dto, err := h.service.GetTestWithQuestions(r.Context(), testID)
	if err != nil {
		log.WithError(err).Error("Failed to load test")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if dto == nil || dto.Test.UserID.String() != claims.UserID {
		http.Error(w, "test not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, dto)
}

func (h *Handler) CompleteTest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	testID := chi.URLParam(r, "id")
	if testID == "" {
		http.Error(w, "test id required", http.StatusBadRequest)
		return
	}

	var dto CompleteTestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.Score < 0 {
		http.Error(w, "score must not be negative", http.StatusBadRequest)
		return
	}

	existing, err := h.service.GetTestWithQuestions(r.Context(), testID)
	if err != nil {
		log.WithError(err).Error("Failed to load test for completion")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil || existing.Test.UserID.String() != claims.UserID {
		http.Error(w, "test not found", http.StatusNotFound)
		return
	}

	if err := h.service.CompleteTest(r.Context(), testID, dto.Score); err != nil {
		if errors.Is(err, ErrTestNotFound) {
			http.Error(w, "test not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to complete test")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "test result recorded",
	})
}

func (h *Handler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	testID := chi.URLParam(r, "id")
	if testID == "" {
		http.Error(w, "test id required", http.StatusBadRequest)
		return
	}

	existing, err := h.service.GetTestWithQuestions(r.Context(), testID)
	if err != nil {
		log.WithError(err).Error("Failed to load test for deletion")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if existing == nil || existing.Test.UserID.String() != claims.UserID {
		http.Error(w, "test not found", http.StatusNotFound)
		return
	}

	if err := h.service.DeleteTest(r.Context(), testID); err != nil {
		log.WithError(err).Error("Failed to delete test")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "test deleted successfully",
	})
}
