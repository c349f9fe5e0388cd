package generator

import "github.com/practico-app/practico-lambda/internal/test"

type GeneratorContainer struct {
	Service Service
	Handler *Handler
}

func NewGeneratorContainer(tests test.TestService) *GeneratorContainer {
	service := NewService(tests, nil)
	handler := NewHandler(service)

	return &GeneratorContainer{
		Service: service,
		Handler: handler,
	}
}
