// File: /database/database.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"peerza-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.UserSkill{},
		&models.FriendRequest{},
		&models.Friendship{},
		&models.Message{},
		&models.Meeting{},
		&models.Availability{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	addCustomIndexes(db)
	addDatabaseConstraints(db)

	return nil
}

func addCustomIndexes(db *gorm.DB) {
	indexes := []string{
		"CREATE INDEX idx_messages_pair_time ON messages(sender_id, receiver_id, timestamp)",
		"CREATE INDEX idx_meetings_pair_status ON meetings(host_id, guest_id, status)",
		"CREATE INDEX idx_notifications_feed ON notifications(user_id, is_read, created_at)",
		"CREATE INDEX idx_user_skills_type ON user_skills(skill_type, skill_id)",
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			logrus.WithError(err).Debug("index exists or could not be created")
		}
	}
}

func addDatabaseConstraints(db *gorm.DB) {
	constraints := []string{
		// One friend request row per ordered (from, to) pair
		"ALTER TABLE friend_requests ADD CONSTRAINT uk_friend_requests_pair UNIQUE (from_user_id, to_user_id)",
		// One friendship row per direction
		"ALTER TABLE friendships ADD CONSTRAINT uk_friendships_pair UNIQUE (user_id, friend_id)",
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			logrus.WithError(err).Debug("constraint exists or could not be added")
		}
	}
}
