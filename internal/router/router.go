package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/practico-app/practico-lambda/internal/analytics"
	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/exam"
	"github.com/practico-app/practico-lambda/internal/generator"
	"github.com/practico-app/practico-lambda/internal/middlewares"
	"github.com/practico-app/practico-lambda/internal/test"
	"github.com/practico-app/practico-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	GeneratorHandler *generator.Handler
	TestHandler      *test.Handler
	ExamHandler      *exam.Handler
	AnalyticsHandler *analytics.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/generate-test", func(r chi.Router) {
		r.Mount("/", generator.Routes(cfg.GeneratorHandler))
	})

	r.Mount("/exam-types", exam.Routes(cfg.ExamHandler))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/tests", test.Routes(cfg.TestHandler))
		r.Mount("/analytics", analytics.Routes(cfg.AnalyticsHandler))
	})

	return r
}
