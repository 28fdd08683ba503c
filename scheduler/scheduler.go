package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"duit/model"
	"duit/services"

	"github.com/robfig/cron/v3"
)

// Sweeper runs the reconciliation pipeline in the background so expired
// todos get cleaned up even when nobody is refreshing the list. Each user's
// batch is an independent pass; failures are logged, not notified.
type Sweeper struct {
	cron   *cron.Cron
	store  services.TodoStore
	source services.SweepSource
	loc    *time.Location
}

func NewSweeper(store services.TodoStore, source services.SweepSource, loc *time.Location) *Sweeper {
	return &Sweeper{
		cron:   cron.New(cron.WithLocation(loc)),
		store:  store,
		source: source,
		loc:    loc,
	}
}

// Start registers the sweep at the given interval and starts the cron
// runner.
func (s *Sweeper) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	spec := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the runner and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweep reads the collection once and reconciles each user's batch from
// that single snapshot.
func (s *Sweeper) sweep() {
	ctx := context.Background()

	todos, err := s.source.FetchEveryone(ctx)
	if err != nil {
		log.Printf("sweep: fetch todos: %v", err)
		return
	}

	byUser := make(map[string][]model.Todo)
	for _, t := range todos {
		if t.User == "" {
			continue
		}
		byUser[t.User] = append(byUser[t.User], t)
	}

	now := time.Now()
	for user, batch := range byUser {
		res := services.Reconcile(ctx, s.store, batch, now, s.loc)
		for _, f := range res.Failures {
			log.Printf("sweep: user %s todo %s: %s", user, f.ID, f.Message)
		}
	}
}
