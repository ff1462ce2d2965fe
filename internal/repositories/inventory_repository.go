package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

type InventoryRepository interface {
	// ListByUser returns all items for a user, soonest expiry first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.InventoryItem, error)
	Insert(ctx context.Context, item *db_models.InventoryItem) error
	Delete(ctx context.Context, userID uuid.UUID, itemID string) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.InventoryItem, error) {
	var items []db_models.InventoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Insert(ctx context.Context, item *db_models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, userID uuid.UUID, itemID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, itemID).
		Delete(&db_models.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("no rows deleted")
	}
	return nil
}
