package generator

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/practico-app/practico-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateTest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.JSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request format: " + err.Error(),
			Message: "Failed to generate test questions",
		})
		return
	}

	result, err := h.service.Generate(r.Context(), req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			config.JSON(w, http.StatusBadRequest, ErrorResponse{
				Error:   verr.Msg,
				Message: "Failed to generate test questions",
			})
			return
		}

		log.WithError(err).Error("Failed to generate questions")
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "internal server error",
			Message: "Failed to generate test questions",
		})
		return
	}

	config.JSON(w, http.StatusOK, result)
}
