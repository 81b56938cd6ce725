package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/alcast/backoffice/internal/service"
)

// Scheduler runs recurring background jobs, currently the daily mark-to-market
// snapshot over the hedge book.
type Scheduler struct {
	cron          *cron.Cron
	marketService *service.MarketService
}

// New creates a Scheduler with the jobs registered but not started.
func New(marketService *service.MarketService, mtmSchedule string) (*Scheduler, error) {
	s := &Scheduler{
		cron:          cron.New(),
		marketService: marketService,
	}

	if _, err := s.cron.AddFunc(mtmSchedule, s.runMTMSnapshot); err != nil {
		return nil, fmt.Errorf("failed to schedule mtm snapshot: %w", err)
	}

	return s, nil
}

// Start begins running scheduled jobs in their own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runMTMSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	records, err := s.marketService.RunMTMSnapshot(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("mtm snapshot failed: %v", err)
		return
	}
	log.Printf("mtm snapshot complete: %d hedges valued", len(records))
}
