package generator

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/practico-app/practico-lambda/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	// Auth is optional here: anonymous visitors can generate a test,
	// authenticated callers can additionally save it.
	r.Use(auth.OptionalAuthMiddleware)

	r.Post("/", h.GenerateTest)
	return r
}
