// File: /services/presence_service.go
package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"peerza-api/models"
	"peerza-api/repositories"
)

// dbTouchInterval throttles last_active writes to the database. The
// redis key carries the fine-grained signal; the column only needs to
// stay within the online window.
const dbTouchInterval = 60 * time.Second

// PresenceService maintains the online heuristic: every authenticated
// request refreshes a redis key with the online-window TTL and,
// throttled, the user's last_active_at column. Without redis it falls
// back to writing the column on every request.
type PresenceService struct {
	rdb   *redis.Client
	users *repositories.UserRepository
}

func NewPresenceService(rdb *redis.Client, users *repositories.UserRepository) *PresenceService {
	return &PresenceService{rdb: rdb, users: users}
}

func (s *PresenceService) Touch(ctx context.Context, userID string) {
	now := time.Now()

	if s.rdb == nil {
		if err := s.users.TouchLastActive(userID, now); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("failed to update last_active")
		}
		return
	}

	if err := s.rdb.Set(ctx, "presence:"+userID, now.Unix(), models.OnlineWindow).Err(); err != nil {
		logrus.WithError(err).Warn("failed to refresh presence key")
	}

	ok, err := s.rdb.SetNX(ctx, "presence:db:"+userID, 1, dbTouchInterval).Result()
	if err != nil || !ok {
		return
	}
	if err := s.users.TouchLastActive(userID, now); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("failed to update last_active")
	}
}

// Annotate overrides the computed online flag with the live redis
// signal when available.
func (s *PresenceService) Annotate(ctx context.Context, user *models.PublicUser) {
	if s == nil || s.rdb == nil || user == nil {
		return
	}
	exists, err := s.rdb.Exists(ctx, "presence:"+user.ID).Result()
	if err != nil {
		return
	}
	user.Online = user.Online || exists > 0
}
