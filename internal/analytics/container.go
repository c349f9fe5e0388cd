package analytics

import "github.com/practico-app/practico-lambda/internal/test"

type AnalyticsContainer struct {
	Service AnalyticsService
	Handler *Handler
}

func NewAnalyticsContainer(tests test.TestRepository) *AnalyticsContainer {
	service := NewService(tests)
	handler := NewHandler(service)

	return &AnalyticsContainer{
		Service: service,
		Handler: handler,
	}
}
