package test

import "gorm.io/gorm"

type TestContainer struct {
	Repo    TestRepository
	Service TestService
	Handler *Handler
}

func NewTestContainer(db *gorm.DB) *TestContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &TestContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
