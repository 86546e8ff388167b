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

	"github.com/go-bingo-api/internal/config"
	"github.com/go-bingo-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-bingo-api/internal/infrastructure/jwt"
	"github.com/go-bingo-api/internal/infrastructure/smtp"
	transporthttp "github.com/go-bingo-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient, err := dynamo.NewClient(cfg)
	if err != nil {
		log.Fatalf("dynamodb client: %v", err)
	}
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// Gateway identity-claim verifier (optional — bearer tokens still work without it).
	var claimsVerifier *jwtinfra.Verifier
	if cfg.ClaimsPublicKeyPath != "" {
		if v, err := jwtinfra.NewVerifier(cfg); err == nil {
			claimsVerifier = v
		} else {
			log.Printf("WARN: claims verifier not available: %v", err)
		}
	}

	deps := &transporthttp.Deps{
		IdentityRepo:   dynamo.NewIdentityRepo(dynamoClient, cfg.DynamoTables.Identity),
		CommunityRepo:  dynamo.NewCommunityRepo(dynamoClient, cfg.DynamoTables.Community),
		Mailer:         smtp.NewMailer(cfg),
		ClaimsVerifier: claimsVerifier,
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
