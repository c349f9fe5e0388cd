package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/practico-app/practico-lambda/internal/container"
	"github.com/practico-app/practico-lambda/internal/router"
)

func main() {
	// Local convenience only; in Lambda the env comes from the function
	// configuration and no .env file exists.
	_ = godotenv.Load()

	c := container.New()
	defer c.Close()

	r := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		GeneratorHandler: c.GeneratorContainer.Handler,
		TestHandler:      c.TestContainer.Handler,
		ExamHandler:      c.ExamHandler,
		AnalyticsHandler: c.AnalyticsContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
