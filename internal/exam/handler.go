package exam

import (
	"net/http"

	"github.com/practico-app/practico-lambda/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ListExamTypes(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, Catalog())
}
