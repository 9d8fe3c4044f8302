package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/portal360/admin-api/internal/config"
	"github.com/portal360/admin-api/internal/infrastructure/dynamo"
	"github.com/portal360/admin-api/internal/infrastructure/google"
	jwtinfra "github.com/portal360/admin-api/internal/infrastructure/jwt"
	s3infra "github.com/portal360/admin-api/internal/infrastructure/s3"
	"github.com/portal360/admin-api/internal/infrastructure/smtp"
	"github.com/portal360/admin-api/internal/infrastructure/sns"
	transporthttp "github.com/portal360/admin-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional, graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for website content assets.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer for trigger test-sends.
	mailer := smtp.NewMailer(cfg)

	// SNS announcer (optional, graceful fallback).
	var announcer sns.Announcer
	if cfg.SNSTopicARN != "" {
		if a, err := sns.NewAnnouncer(cfg); err == nil {
			announcer = a
		} else {
			log.Printf("WARN: SNS announcer not available: %v", err)
		}
	}

	// Google SSO verifier (optional).
	var googleVerifier *google.Verifier
	if cfg.GoogleClientID != "" {
		googleVerifier = google.NewVerifier(cfg.GoogleClientID)
	}

	deps := &transporthttp.Deps{
		UserRepo:        dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		SessionRepo:     dynamo.NewSessionRepo(dynamoClient, cfg.DynamoTables.Sessions),
		TriggerRepo:     dynamo.NewTriggerRepo(dynamoClient, cfg.DynamoTables.Triggers),
		EventRepo:       dynamo.NewEventRepo(dynamoClient, cfg.DynamoTables.Events),
		FeatureRepo:     dynamo.NewFeatureRepo(dynamoClient, cfg.DynamoTables.Features),
		ContentRepo:     dynamo.NewContentRepo(dynamoClient, cfg.DynamoTables.ContentAssets),
		ObjectStore:     s3Store,
		Mailer:          mailer,
		Announcer:       announcer,
		JWTProvider:     jwtProvider,
		GoogleVerifier:  googleVerifier,
		RefreshTokenDur: time.Duration(cfg.RefreshTokenExpiryDays) * 24 * time.Hour,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
