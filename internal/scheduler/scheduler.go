package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"BitMonitor/internal/dashboard"
	"BitMonitor/internal/store"
)

// Scheduler manages the cron-driven background jobs.
type Scheduler struct {
	Cron    *cron.Cron
	Service *dashboard.Service
	Store   store.Store
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *dashboard.Service, st store.Store) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Store:   st,
		Ctx:     ctx,
	}
}

// RegisterAll registers the history snapshot job.
func (s *Scheduler) RegisterAll(snapshotCron string) error {
	if _, err := s.Cron.AddFunc(snapshotCron, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunSnapshotNow executes the snapshot task immediately (manual trigger).
func (s *Scheduler) RunSnapshotNow() {
	s.snapshotTask()
}

func (s *Scheduler) snapshotTask() {
	snap, err := s.Service.Snapshot(s.Ctx)
	if err != nil {
		log.Printf("[WARN] snapshot skipped: %v", err)
		return
	}
	if err := s.Store.RecordSnapshot(snap); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
		return
	}
	log.Printf("[INFO] recorded quote snapshot: %s %.2f", snap.Asset, snap.Value)
}
