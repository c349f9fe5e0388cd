package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/config"
	"github.com/practico-app/practico-lambda/internal/test"
	"gorm.io/datatypes"
)

const optionsPerQuestion = 4

// ErrNoQuestions means a validated positive count still produced an
// empty set. That is a server fault, never a user error.
var ErrNoQuestions = errors.New("question generation produced an empty set")

// ValidationError reports a rejected generation request. Its message is
// safe to surface to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

type service struct {
	tests    test.TestService
	validate *validator.Validate

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewService builds the generator. tests may be nil when persistence is
// unavailable; saving then silently degrades to generation only. rng may
// be nil, in which case a time-seeded source is used.
func NewService(tests test.TestService, rng *rand.Rand) Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &service{
		tests:    tests,
		validate: validator.New(),
		rng:      rng,
	}
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	log := config.WithContext(ctx)

	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &ValidationError{Msg: validationMessage(fieldErrs[0])}
		}
		return nil, &ValidationError{Msg: err.Error()}
	}

	log.Infof("Generating %d questions for %s on topic %q", req.NumQuestions, req.ExamType, req.Topic)

	branch := BranchFor(req.ExamType)
	questions := make([]Question, 0, req.NumQuestions)
	for i := 0; i < req.NumQuestions; i++ {
		num := i + 1
		text, options, explanation := branch.render(num, req.ExamType, req.Topic)
		questions = append(questions, Question{
			ID:            num,
			Text:          text,
			Options:       options,
			CorrectAnswer: s.drawCorrectIndex(),
			Explanation:   explanation,
		})
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &GenerateResult{
		Questions: questions,
		Message:   "Test generated successfully",
	}

	s.saveBestEffort(ctx, req, result)

	return result, nil
}

// drawCorrectIndex picks the asserted correct option uniformly. The
// label is arbitrary: options are never reordered to agree with it.
func (s *service) drawCorrectIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(optionsPerQuestion)
}

// saveBestEffort persists the generated test for an authenticated caller
// who asked for it. Any failure is logged and swallowed; generation must
// not fail because persistence failed.
func (s *service) saveBestEffort(ctx context.Context, req GenerateRequest, result *GenerateResult) {
	if !req.SaveToDatabase || s.tests == nil {
		return
	}
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Debug("Not saving generated test: request is unauthenticated")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Not saving generated test: malformed user id in claims")
		return
	}

	t := &test.Test{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          fmt.Sprintf("%s practice test", req.Topic),
		Description:    fmt.Sprintf("%d questions on %s for %s", len(result.Questions), req.Topic, req.ExamType),
		ExamType:       req.ExamType,
		Topic:          req.Topic,
		TotalQuestions: len(result.Questions),
	}

	rows := make([]*test.TestQuestion, 0, len(result.Questions))
	for _, q := range result.Questions {
		opts, err := json.Marshal(q.Options)
		if err != nil {
			log.WithError(err).Warn("Not saving generated test: could not encode options")
			return
		}
		rows = append(rows, &test.TestQuestion{
			TestID:        t.ID,
			Position:      q.ID,
			Content:       q.Text,
			Options:       datatypes.JSON(opts),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	if err := s.tests.CreateTestWithQuestions(ctx, t, rows); err != nil {
		log.WithError(err).Error("Best-effort save of generated test failed")
		return
	}

	id := t.ID
	result.TestID = &id
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "ExamType":
		return "Missing required parameter: examType"
	case "Topic":
		return "Missing required parameter: topic"
	case "NumQuestions":
		return "Invalid or missing numQuestions parameter"
	}
	return fe.Error()
}
