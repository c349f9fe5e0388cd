package test

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type TestRepository interface {
	Create(t *Test) error
	GetByID(id string) (*Test, error)
	ListByUser(userID string) ([]*Test, error)
	Delete(id string) error
	RecordResult(id string, score int, completedAt time.Time) error

	AddQuestions(questions []*TestQuestion) error
	ListQuestionsByTest(testID string) ([]*TestQuestion, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(t *Test) error {
	return r.db.Create(t).Error
}

func (r *testRepository) GetByID(id string) (*Test, error) {
	var t Test
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *testRepository) ListByUser(userID string) ([]*Test, error) {
	var tests []*Test
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) Delete(id string) error {
	return r.db.Delete(&Test{}, "id = ?", id).Error
}

func (r *testRepository) RecordResult(id string, score int, completedAt time.Time) error {
	return r.db.Model(&Test{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"score":        score,
			"completed_at": completedAt,
		}).Error
}

func (r *testRepository) AddQuestions(questions []*TestQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *testRepository) ListQuestionsByTest(testID string) ([]*TestQuestion, error) {
	var questions []*TestQuestion
	if err := r.db.
		Where("test_id = ?", testID).
		Order("position ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
