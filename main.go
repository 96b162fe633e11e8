package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	skafka "github.com/segmentio/kafka-go"

	"fitapi/ai"
	"fitapi/api"
	"fitapi/config"
	"fitapi/feed"
	"fitapi/kafka"
	"fitapi/logger"
	"fitapi/models"
	oidcutil "fitapi/oidc"
	"fitapi/store"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	logger.Info("starting application")

	// Root context with cancellation for graceful shutdown (used across subsystems)
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// Initialize Mongo store layer
	if err := store.Init(appCtx); err != nil {
		log.Fatalf("mongo init failed: %v", err)
	}
	defer store.Close(context.Background())

	// Initialize OIDC (provider + verifier)
	_, verifier := oidcutil.Init(appCtx)

	advisor := ai.NewClient(config.GeminiAPIKey, config.GeminiBaseURL, config.GeminiModel)

	// Kafka consumer -> broadcast channel; the server fans out to websocket clients.
	broadcast := make(chan models.ChatMessage)
	go kafka.Reader(appCtx, broadcast)

	srv := api.NewServer(api.Deps{
		Feed:         feed.New(store.FeedAdapter{}, config.FeedCap),
		Testimonials: store.TestimonialAdapter{},
		Workouts:     store.WorkoutAdapter{},
		Plans:        store.PlanAdapter{},
		Chat:         store.ChatAdapter{},
		Advisor:      advisor,
		Producer:     kafka.ProducerAdapter{},
		Verifier:     oidcutil.VerifierAdapter{Verifier: verifier},
		Ready:        checkReady,
		ChatMaxLen:   config.ChatMaxLen,
		Broadcast:    broadcast,
	})

	httpSrv := &http.Server{
		Addr:              ":" + config.ApiPort,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Capture OS signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("shutdown signal received")
		appCancel()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown error", err)
		}
	}()

	logger.Info("http server listening", logger.FieldKV("port", config.ApiPort))
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("http server error", err)
	}
}

// checkReady verifies Mongo and Kafka are reachable for the readiness probe.
func checkReady(ctx context.Context) error {
	if err := store.Ping(ctx); err != nil {
		return err
	}
	kr := skafka.NewReader(skafka.ReaderConfig{
		Brokers:   []string{config.KafkaBroker},
		Topic:     config.ChatTopic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1,
	})
	defer kr.Close()
	_, err := kr.ReadLag(ctx)
	return err
}
