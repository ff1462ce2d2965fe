package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

type EnergyRepository interface {
	ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]db_models.EnergyUsageEntry, error)
	// ListBetween returns entries with from <= date < to, used for the
	// previous-window comparison in the monthly summary.
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]db_models.EnergyUsageEntry, error)
	Insert(ctx context.Context, entry *db_models.EnergyUsageEntry) error
}

type energyRepository struct {
	db *gorm.DB
}

func NewEnergyRepository(db *gorm.DB) EnergyRepository {
	return &energyRepository{db: db}
}

func (r *energyRepository) ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]db_models.EnergyUsageEntry, error) {
	var entries []db_models.EnergyUsageEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *energyRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]db_models.EnergyUsageEntry, error) {
	var entries []db_models.EnergyUsageEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *energyRepository) Insert(ctx context.Context, entry *db_models.EnergyUsageEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
