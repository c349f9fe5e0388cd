package analytics

import (
	"net/http"

	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/config"
)

type Handler struct {
	service AnalyticsService
}

func NewHandler(s AnalyticsService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.service.Summarize(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to build analytics summary")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
