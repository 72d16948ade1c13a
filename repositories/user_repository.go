// File: /repositories/user_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"peerza-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) bool {
	var count int64
	r.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func (r *UserRepository) UsernameExists(username string) bool {
	var count int64
	r.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

// UpdateFields applies a partial profile update.
func (r *UserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) SetPassword(id, hashed string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password", hashed).Error
}

// SetPro flips the Pro flag after a confirmed payment.
func (r *UserRepository) SetPro(id string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_pro", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClaimFirebaseUID assigns the external presence UID to userID, stealing
// it from any other account that currently holds it.
func (r *UserRepository) ClaimFirebaseUID(userID, uid string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("firebase_uid = ? AND id <> ?", uid, userID).
			Update("firebase_uid", nil).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("firebase_uid", uid).Error
	})
}

func (r *UserRepository) TouchLastActive(id string, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_active_at", at).Error
}
