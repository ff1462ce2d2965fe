package repositories

import (
	"context"

	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

type LeaderboardRepository interface {
	// TopAccounts returns up to limit accounts ordered by eco points,
	// ties broken by name so standings are stable between refreshes.
	TopAccounts(ctx context.Context, limit int) ([]db_models.Account, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) TopAccounts(ctx context.Context, limit int) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := r.db.WithContext(ctx).
		Order("eco_points DESC, name ASC").
		Limit(limit).
		Find(&accounts).Error
	return accounts, err
}
