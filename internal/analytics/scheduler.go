package analytics

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper is anything that can drop its own expired entries.
type Sweeper interface {
	Sweep() int
}

type Scheduler struct {
	cron      *cron.Cron
	store     *Store
	retention time.Duration
	sweepers  []Sweeper
}

// NewScheduler runs retention cleanup daily and sweeps the given in-process
// stores hourly.
func NewScheduler(store *Store, retention time.Duration, sweepers ...Sweeper) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		store:     store,
		retention: retention,
		sweepers:  sweepers,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@daily", s.RunCleanup); err != nil {
		return err
	}
	if len(s.sweepers) > 0 {
		if _, err := s.cron.AddFunc("@hourly", s.RunSweep); err != nil {
			return err
		}
	}

	log.Println("[analytics] cron scheduler started (cleanup daily, session sweep hourly)")
	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunCleanup removes analytics older than the retention window.
func (s *Scheduler) RunCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.store.Cleanup(ctx, s.store.now().Add(-s.retention))
	if err != nil {
		log.Printf("[analytics] cleanup failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[analytics] privacy cleanup removed %d records older than %s", n, s.retention)
	}
}

func (s *Scheduler) RunSweep() {
	for _, sw := range s.sweepers {
		if n := sw.Sweep(); n > 0 {
			log.Printf("[analytics] swept %d expired entries", n)
		}
	}
}
