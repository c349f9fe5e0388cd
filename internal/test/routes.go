package test

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListTests)
	r.Get("/{id}", h.GetTest)
	r.Post("/{id}/complete", h.CompleteTest)
	r.Delete("/{id}", h.DeleteTest)
	return r
}
