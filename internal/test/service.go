package test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/practico-app/practico-lambda/internal/config"
	"gorm.io/gorm"
)

var ErrTestNotFound = errors.New("test not found")

type TestService interface {
	CreateTestWithQuestions(ctx context.Context, t *Test, questions []*TestQuestion) error
	ListTestsByUser(ctx context.Context, userID string) ([]*Test, error)
	GetTestWithQuestions(ctx context.Context, testID string) (*TestWithQuestionsDTO, error)
	CompleteTest(ctx context.Context, testID string, score int) error
	DeleteTest(ctx context.Context, testID string) error
}

type testService struct {
	repo TestRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo TestRepository) TestService {
	return &testService{
		repo: repo,
		db:   db,
	}
}

// CreateTestWithQuestions inserts the test and its questions atomically,
// so a failed question insert never leaves an orphaned test record.
func (s *testService) CreateTestWithQuestions(ctx context.Context, t *Test, questions []*TestQuestion) error {
	log := config.WithContext(ctx)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			log.WithError(err).Error("Failed to create test record")
			return err
		}

		for i := range questions {
			questions[i].TestID = t.ID
			if questions[i].ID == uuid.Nil {
				questions[i].ID = uuid.New()
			}
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				log.WithError(err).Error("Failed to create test questions")
				return err
			}
		}

		log.Infof("Created test %s with %d questions", t.ID, len(questions))
		return nil
	})
}

func (s *testService) ListTestsByUser(ctx context.Context, userID string) ([]*Test, error) {
	log := config.WithContext(ctx)

	tests, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list tests")
		return nil, err
	}
	return tests, nil
}

func (s *testService) GetTestWithQuestions(ctx context.Context, testID string) (*TestWithQuestionsDTO, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.GetByID(testID)
	if err != nil {
		log.WithError(err).Error("Failed to load test")
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	questions, err := s.repo.ListQuestionsByTest(testID)
	if err != nil {
		log.WithError(err).Error("Failed to list test questions")
		return nil, err
	}

	return &TestWithQuestionsDTO{
		Test:      t,
		Questions: questions,
	}, nil
}

func (s *testService) CompleteTest(ctx context.Context, testID string, score int) error {
	log := config.WithContext(ctx)

	t, err := s.repo.GetByID(testID)
	if err != nil {
		log.WithError(err).Error("Failed to load test for completion")
		return err
	}
	if t == nil {
		return ErrTestNotFound
	}

	if err := s.repo.RecordResult(testID, score, time.Now().UTC()); err != nil {
		log.WithError(err).Error("Failed to record test result")
		return err
	}

	log.Infof("Recorded result %d/%d for test %s", score, t.TotalQuestions, testID)
	return nil
}

func (s *testService) DeleteTest(ctx context.Context, testID string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(testID); err != nil {
		log.WithError(err).Error("Failed to delete test")
		return err
	}
	return nil
}
