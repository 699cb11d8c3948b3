package repo

import (
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
}

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// All lists every account ordered by username.
func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	return users, r.db.Order("username asc").Find(&users).Error
}

// DeleteByUsername removes every row matching username (normally zero or
// one). Deleting an absent username is not an error.
func (r *UserRepository) DeleteByUsername(username string) error {
	return r.db.Where("username = ?", username).Delete(&models.User{}).Error
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Count(&count).Error
}
