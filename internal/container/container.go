package container

import (
	"context"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/practico-app/practico-lambda/internal/analytics"
	"github.com/practico-app/practico-lambda/internal/auth"
	"github.com/practico-app/practico-lambda/internal/config"
	"github.com/practico-app/practico-lambda/internal/exam"
	"github.com/practico-app/practico-lambda/internal/generator"
	"github.com/practico-app/practico-lambda/internal/test"
	"github.com/practico-app/practico-lambda/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	TestContainer      *test.TestContainer
	GeneratorContainer *generator.GeneratorContainer
	ExamHandler        *exam.Handler
	AnalyticsContainer *analytics.AnalyticsContainer

	db *gorm.DB
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	db, err := config.Connect(context.Background(), dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(&user.User{}, &test.Test{}, &test.TestQuestion{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(db, googleOAuthConfig())
	testContainer := test.NewTestContainer(db)
	generatorContainer := generator.NewGeneratorContainer(testContainer.Service)
	analyticsContainer := analytics.NewAnalyticsContainer(testContainer.Repo)

	return &Container{
		UserContainer:      userContainer,
		TestContainer:      testContainer,
		GeneratorContainer: generatorContainer,
		ExamHandler:        exam.NewHandler(),
		AnalyticsContainer: analyticsContainer,
		db:                 db,
	}
}

// Close releases the container's resources. The entrypoint defers it so
// local runs shut the pool down cleanly.
func (c *Container) Close() {
	if c.db != nil {
		if err := config.Close(c.db); err != nil {
			log.Printf("failed to close DB: %v", err)
		}
	}
}

// googleOAuthConfig is nil when the Google client is not configured;
// email/password auth still works and Google login returns 501.
func googleOAuthConfig() *oauth2.Config {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Endpoint:     google.Endpoint,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
	}
}
