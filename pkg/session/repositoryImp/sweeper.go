package repositoryImp

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Purger is implemented by stores that need expired rows removed.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StartSweeper schedules p.PurgeExpired on spec (e.g. "@every 15m") and starts
// the scheduler. Stop the returned cron on shutdown.
func StartSweeper(spec string, p Purger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() { sweep(p) })
	if err != nil {
		return nil, err
	}
	c.Start()
	log.WithField("schedule", spec).Info("[session] sweeper started")
	return c, nil
}

func sweep(p Purger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := p.PurgeExpired(ctx)
	if err != nil {
		log.WithError(err).Warn("[session] purge failed")
		return
	}
	if n > 0 {
		log.WithField("removed", n).Info("[session] purged expired sessions")
	}
}
