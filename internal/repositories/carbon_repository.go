package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

type CarbonRepository interface {
	// ListForDay returns entries whose date equals the given calendar day.
	ListForDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]db_models.CarbonEntry, error)
	// ListSince returns entries with date >= from, oldest first.
	ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]db_models.CarbonEntry, error)
	Insert(ctx context.Context, entry *db_models.CarbonEntry) error
}

type carbonRepository struct {
	db *gorm.DB
}

func NewCarbonRepository(db *gorm.DB) CarbonRepository {
	return &carbonRepository{db: db}
}

func (r *carbonRepository) ListForDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]db_models.CarbonEntry, error) {
	var entries []db_models.CarbonEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Find(&entries).Error
	return entries, err
}

func (r *carbonRepository) ListSince(ctx context.Context, userID uuid.UUID, from time.Time) ([]db_models.CarbonEntry, error) {
	var entries []db_models.CarbonEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *carbonRepository) Insert(ctx context.Context, entry *db_models.CarbonEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
