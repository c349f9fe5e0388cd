package generator

import "github.com/google/uuid"

// Question is one generated multiple-choice question. CorrectAnswer is
// an opaque server-asserted index; the option text never encodes it.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type GenerateRequest struct {
	ExamType       string `json:"examType" validate:"required"`
	Topic          string `json:"topic" validate:"required"`
	NumQuestions   int    `json:"numQuestions" validate:"required,gte=1,lte=100"`
	SaveToDatabase bool   `json:"saveToDatabase"`
}

type GenerateResult struct {
	Questions []Question `json:"questions"`
	Message   string     `json:"message"`
	TestID    *uuid.UUID `json:"testId"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}
