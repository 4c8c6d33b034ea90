package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tjwaterman99/quicksplit-api/pkg/analytics"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron      *cron.Cron
	analytics *analytics.Service
	logger    *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(analyticsService *analytics.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:      cron.New(),
		analytics: analyticsService,
		logger:    logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 1 AM UTC: roll up the previous day's exposures and conversions
	_, err := cm.cron.AddFunc("0 1 * * *", func() {
		cm.logger.Println("🕐 Running daily exposure rollup job...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		yesterday := time.Now().UTC().AddDate(0, 0, -1)
		n, err := cm.analytics.RollupDay(ctx, yesterday)
		if err != nil {
			cm.logger.Printf("❌ Failed to roll up exposures: %v", err)
			return
		}

		cm.logger.Printf("✅ Daily exposure rollup completed (%d rows)", n)
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// Start begins executing scheduled jobs
func (cm *CronManager) Start() {
	cm.logger.Println("Starting cron scheduler...")
	cm.cron.Start()
}

// Stop halts all scheduled jobs
func (cm *CronManager) Stop() {
	cm.logger.Println("Stopping cron scheduler...")
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("✅ Cron scheduler stopped")
}

// RunRollupNow triggers the rollup for a specific day, for manual backfills.
func (cm *CronManager) RunRollupNow(ctx context.Context, day time.Time) (int, error) {
	return cm.analytics.RollupDay(ctx, day)
}
