package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"BitMonitor/internal/api"
	"BitMonitor/internal/config"
	"BitMonitor/internal/dashboard"
	"BitMonitor/internal/feeds"
	"BitMonitor/internal/fetch"
	"BitMonitor/internal/market"
	"BitMonitor/internal/scheduler"
	"BitMonitor/internal/store"
	"BitMonitor/internal/ws"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BitMonitor starting...")

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Shared HTTP client with fixed-delay retry
	client := fetch.New(cfg.Proxy, cfg.Poll.MaxAttempts, cfg.RetryDelay())

	// Upstream sources
	fetcher := market.NewBinanceFetcher(cfg.Exchange.BaseURL, client)
	rates := market.NewAwesomeFX(cfg.FX.BaseURL, client)
	sentiment := market.NewFearGreed(cfg.Sentiment.BaseURL, client)
	log.Printf("[INFO] market source: %s", fetcher.Name())

	// Content feeds
	news := feeds.NewNewsClient(cfg.News.BaseURL, cfg.News.APIKey, cfg.News.Query, cfg.News.Lang, client)
	events := feeds.NewEventsClient(cfg.Events.URL, client)
	etfs := feeds.NewETFTable(time.Now().UnixNano())

	// Init store
	var st store.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using in-memory: %v", err)
			st = store.NewMemoryStore()
		} else {
			st = ss
		}
	} else {
		st = store.NewMemoryStore()
	}
	defer st.Close()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dashboard service and live stream
	hub := ws.NewHub()
	svc := dashboard.NewService(fetcher, rates, sentiment,
		cfg.Exchange.Symbol, cfg.FX.Pair, cfg.PollInterval(), hub)
	svc.Start(ctx)
	defer svc.Stop()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, svc, st)
	if err := sched.RegisterAll(cfg.Schedule.SnapshotCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: record a snapshot immediately on start
	if os.Getenv("SNAPSHOT_ON_START") == "true" {
		log.Println("[INFO] SNAPSHOT_ON_START enabled, recording snapshot now")
		go sched.RunSnapshotNow()
	}

	// HTTP API
	server := api.NewServer(ctx, cfg.Server.Addr, svc, st, news, events, etfs, hub,
		cfg.Sentiment.HistoryLimit)
	server.Start()

	log.Println("[INFO] BitMonitor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] api shutdown: %v", err)
	}
	log.Println("[INFO] BitMonitor stopped")
}
