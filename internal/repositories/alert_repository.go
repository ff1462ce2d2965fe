package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

type AlertRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error)
	// MarkRead flips the read flag on one alert; returns the number of
	// rows updated so callers can distinguish a missing alert.
	MarkRead(ctx context.Context, userID uuid.UUID, alertID string) (int64, error)
	Insert(ctx context.Context, alert *db_models.Alert) error
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error) {
	var alerts []db_models.Alert
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alerts).Error
	return alerts, err
}

func (r *alertRepository) MarkRead(ctx context.Context, userID uuid.UUID, alertID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *alertRepository) Insert(ctx context.Context, alert *db_models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}
