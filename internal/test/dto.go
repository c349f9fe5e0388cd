package test

type TestWithQuestionsDTO struct {
	Test      *Test           `json:"test"`
	Questions []*TestQuestion `json:"questions"`
}

type CompleteTestDTO struct {
	Score int `json:"score" validate:"gte=0"`
}
