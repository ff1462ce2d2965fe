package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

type BadgeRepository interface {
	// AllBadges returns the global catalog.
	AllBadges(ctx context.Context) ([]db_models.Badge, error)
	// UserBadges returns the join rows for one user.
	UserBadges(ctx context.Context, userID uuid.UUID) ([]db_models.UserBadge, error)
}

type badgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) AllBadges(ctx context.Context) ([]db_models.Badge, error) {
	var badges []db_models.Badge
	err := r.db.WithContext(ctx).Order("name ASC").Find(&badges).Error
	return badges, err
}

func (r *badgeRepository) UserBadges(ctx context.Context, userID uuid.UUID) ([]db_models.UserBadge, error) {
	var rows []db_models.UserBadge
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}
