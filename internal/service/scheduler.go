package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"bookkeeper/internal/config"
	"bookkeeper/internal/domain"
)

// Scheduler runs the periodic gap-detection scan. Advisory locking inside the
// reconcile service makes overlapping runs across instances a no-op.
type Scheduler struct {
	cron      *cron.Cron
	reconcile ReconcileService
	cfg       config.ScheduleConfig
}

// NewScheduler creates a scheduler; jobs are registered by Start.
func NewScheduler(reconcile ReconcileService, cfg config.ScheduleConfig) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		reconcile: reconcile,
		cfg:       cfg,
	}
}

// Start registers the configured jobs and launches the cron loop. It is a
// no-op when scheduling is disabled.
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		log.Printf("scheduler: disabled")
		return nil
	}
	_, err := s.cron.AddFunc(s.cfg.GapDetectCron, s.runGapScan)
	if err != nil {
		return fmt.Errorf("scheduler: registering gap scan %q: %w", s.cfg.GapDetectCron, err)
	}
	s.cron.Start()
	log.Printf("scheduler: started, gap scan at %q", s.cfg.GapDetectCron)
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runGapScan() {
	result, err := s.reconcile.DetectGaps(context.Background(), &DetectGapsInput{})
	if err != nil {
		if errors.Is(err, domain.ErrReconciliationInProgress) {
			log.Printf("scheduler: gap scan skipped, already running")
			return
		}
		log.Printf("scheduler: gap scan failed: %v", err)
		return
	}
	log.Printf("scheduler: gap scan done, riskScore=%.2f", result.Results.RiskScore)
}
