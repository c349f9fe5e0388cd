package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Init configures the process-wide logger. Lambda forwards stdout to
// CloudWatch, so structured JSON lines are used there; local runs keep
// the default text formatter for readability.
func Init() {
	logger.SetOutput(os.Stdout)

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	}
}

// WithContext returns a log entry carrying the chi request id, when the
// context has one.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
