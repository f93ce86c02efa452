package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"auction-engine/internal/antisnipe"
	auction "auction-engine/internal/auctionService"
	"auction-engine/internal/events"
	"auction-engine/internal/repository"
	postgresrepo "auction-engine/internal/repository/postgres"
	"auction-engine/internal/server"
	"auction-engine/utils"
)

func main() {
	repo, cleanup, err := buildRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	sink := buildEventSink()

	auctionSvc := auction.NewAuctionService(repo, sink, auction.Options{
		Extender: buildExtender(),
	})

	router := server.SetupRouter(auctionSvc)

	port := getPort()
	fmt.Printf("Starting auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepository selects Postgres when DATABASE_URL is set, in-memory otherwise
func buildRepository() (repository.AuctionDB, func(), error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		repo, err := postgresrepo.Connect(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		utils.Info("using postgres storage", nil)
		return repo, repo.Close, nil
	}
	utils.Info("using in-memory storage", nil)
	return repository.NewMemoryRepo(), func() {}, nil
}

// buildEventSink publishes to NATS when NATS_URL is set, to the log otherwise
func buildEventSink() events.Sink {
	if url := os.Getenv("NATS_URL"); url != "" {
		sink, err := events.ConnectNATS(url)
		if err != nil {
			utils.Warn("NATS unavailable, falling back to log sink", map[string]any{"error": err.Error()})
			return events.NewLogSink()
		}
		utils.Info("publishing events to NATS", map[string]any{"url": url})
		return sink
	}
	return events.NewLogSink()
}

// buildExtender reads anti-snipe knobs from env, keeping defaults otherwise
func buildExtender() *antisnipe.Extender {
	ext := antisnipe.NewDefaultExtender()
	if v := getEnvInt("SNIPE_THRESHOLD_SECONDS"); v > 0 {
		ext.Threshold = time.Duration(v) * time.Second
	}
	if v := getEnvInt("SNIPE_EXTENSION_MINUTES"); v > 0 {
		ext.Extension = time.Duration(v) * time.Minute
	}
	if v := getEnvInt("SNIPE_MAX_EXTENSIONS"); v > 0 {
		ext.MaxExtensions = v
	}
	return ext
}

func getEnvInt(key string) int {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.Warn("ignoring invalid env value", map[string]any{"key": key, "value": raw})
		return 0
	}
	return v
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
