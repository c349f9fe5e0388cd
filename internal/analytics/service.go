package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/practico-app/practico-lambda/internal/config"
	"github.com/practico-app/practico-lambda/internal/test"
)

const recentScoreLimit = 7

type Summary struct {
	TestsTaken          int            `json:"tests_taken"`
	TestsCompleted      int            `json:"tests_completed"`
	QuestionsAttempted  int            `json:"questions_attempted"`
	AverageScorePercent float64        `json:"average_score_percent"`
	ByExamType          []ExamTypeStat `json:"by_exam_type"`
	RecentScores        []RecentScore  `json:"recent_scores"`
}

type ExamTypeStat struct {
	ExamType            string  `json:"exam_type"`
	TestsCompleted      int     `json:"tests_completed"`
	AverageScorePercent float64 `json:"average_score_percent"`
}

type RecentScore struct {
	TestID      uuid.UUID `json:"test_id"`
	ExamType    string    `json:"exam_type"`
	Topic       string    `json:"topic"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	CompletedAt time.Time `json:"completed_at"`
}

type AnalyticsService interface {
	Summarize(ctx context.Context, userID string) (*Summary, error)
}

type analyticsService struct {
	tests test.TestRepository
}

func NewService(tests test.TestRepository) AnalyticsService {
	return &analyticsService{tests: tests}
}

// Summarize aggregates a user's completed tests into the dashboard
// figures. Tests without a recorded result count toward TestsTaken only.
func (s *analyticsService) Summarize(ctx context.Context, userID string) (*Summary, error) {
	log := config.WithContext(ctx)

	tests, err := s.tests.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load tests for analytics")
		return nil, err
	}

	summary := &Summary{
		TestsTaken:   len(tests),
		ByExamType:   []ExamTypeStat{},
		RecentScores: []RecentScore{},
	}

	var pctSum float64
	perExam := make(map[string]*ExamTypeStat)
	var examOrder []string

	for _, t := range tests {
		if t.Score == nil || t.CompletedAt == nil || t.TotalQuestions == 0 {
			continue
		}

		pct := float64(*t.Score) / float64(t.TotalQuestions) * 100

		summary.TestsCompleted++
		summary.QuestionsAttempted += t.TotalQuestions
		pctSum += pct

		stat, ok := perExam[t.ExamType]
		if !ok {
			stat = &ExamTypeStat{ExamType: t.ExamType}
			perExam[t.ExamType] = stat
			examOrder = append(examOrder, t.ExamType)
		}
		// AverageScorePercent temporarily accumulates the sum; divided below.
		stat.TestsCompleted++
		stat.AverageScorePercent += pct

		summary.RecentScores = append(summary.RecentScores, RecentScore{
			TestID:      t.ID,
			ExamType:    t.ExamType,
			Topic:       t.Topic,
			Score:       *t.Score,
			Total:       t.TotalQuestions,
			CompletedAt: *t.CompletedAt,
		})
	}

	if summary.TestsCompleted > 0 {
		summary.AverageScorePercent = pctSum / float64(summary.TestsCompleted)
	}

	for _, examType := range examOrder {
		stat := perExam[examType]
		stat.AverageScorePercent /= float64(stat.TestsCompleted)
		summary.ByExamType = append(summary.ByExamType, *stat)
	}

	sort.Slice(summary.RecentScores, func(i, j int) bool {
		return summary.RecentScores[i].CompletedAt.After(summary.RecentScores[j].CompletedAt)
	})
	if len(summary.RecentScores) > recentScoreLimit {
		summary.RecentScores = summary.RecentScores[:recentScoreLimit]
	}

	return summary, nil
}
