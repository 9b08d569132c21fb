package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/NomadRelief/stall-scheduler/internal/config"
	ucHistory "github.com/NomadRelief/stall-scheduler/internal/usecase/history"
)

// Start runs the archival sweep once immediately, then on the configured
// schedule (hourly by default). The returned cron can be stopped on
// shutdown.
func Start(cfg *config.Config, sweep *ucHistory.Sweep) (*cron.Cron, error) {
	run := func() {
		count, err := sweep.Execute(context.Background())
		if err != nil {
			log.Printf("history sweep failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("history sweep archived %d appointments", count)
		}
	}

	go run()

	c := cron.New()
	if _, err := c.AddFunc(cfg.SweepSchedule, run); err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("history sweep scheduled: %q", cfg.SweepSchedule)
	return c, nil
}
