package test

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Test struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description,omitempty"`
	ExamType       string     `gorm:"type:text;not null;index" json:"exam_type"`
	Topic          string     `gorm:"type:text;not null" json:"topic"`
	TotalQuestions int        `gorm:"not null;default:0" json:"total_questions"`
	Score          *int       `json:"score,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Questions []TestQuestion `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type TestQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TestID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"test_id"`
	Position      int            `gorm:"not null" json:"position"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer int            `gorm:"not null" json:"correct_answer"`
	Explanation   string         `gorm:"type:text" json:"explanation,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
