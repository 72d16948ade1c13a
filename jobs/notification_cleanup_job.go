// File: /jobs/notification_cleanup_job.go
package jobs

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"peerza-api/repositories"
)

// NotificationCleanupJob handles periodic pruning of old read notifications
type NotificationCleanupJob struct {
	notifications *repositories.NotificationRepository
	retention     time.Duration
	ticker        *time.Ticker
	done          chan bool
}

// NewNotificationCleanupJob creates a new notification cleanup job
func NewNotificationCleanupJob(db *gorm.DB, interval, retention time.Duration) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		notifications: repositories.NewNotificationRepository(db),
		retention:     retention,
		ticker:        time.NewTicker(interval),
		done:          make(chan bool),
	}
}

// Start begins the cleanup job
func (j *NotificationCleanupJob) Start() {
	logrus.Info("Notification cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				logrus.Info("Notification cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *NotificationCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *NotificationCleanupJob) cleanup() {
	cutoff := time.Now().Add(-j.retention)

	pruned, err := j.notifications.DeleteReadBefore(cutoff)
	if err != nil {
		logrus.WithError(err).Error("notification cleanup failed")
		return
	}
	if pruned > 0 {
		logrus.WithField("pruned", pruned).Info("notification cleanup completed")
	}
}
