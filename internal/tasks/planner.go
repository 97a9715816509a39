package tasks

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const purgeTimeout = time.Minute

type Purger interface {
	PurgeCompleted(ctx context.Context) (int, error)
}

// PurgeCompletedJob removes COMPLETED queue entries of every doctor.
func PurgeCompletedJob(purger Purger, logger *logrus.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		n, err := purger.PurgeCompleted(ctx)
		if err != nil {
			logger.WithError(err).WithField("deleted_count", n).Error("cleanup of completed queue entries failed")
			return
		}
		logger.WithField("deleted_count", n).Info("completed queue entries cleaned up")
	}
}

// InitScheduler starts the cron scheduler with the daily cleanup job. An empty
// schedule leaves the scheduler without jobs.
func InitScheduler(schedule string, purger Purger, logger *logrus.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if schedule != "" {
		if _, err := c.AddFunc(schedule, PurgeCompletedJob(purger, logger)); err != nil {
			return nil, errors.Wrapf(err, "invalid cleanup schedule %q", schedule)
		}
	}

	c.Start()
	logger.WithField("schedule", schedule).Info("cron scheduler started")
	return c, nil
}
