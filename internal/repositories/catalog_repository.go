package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

// CatalogRepository serves the global reference tables: shop products,
// community groups, and challenges, plus the per-user challenge join.
type CatalogRepository interface {
	Products(ctx context.Context) ([]db_models.ShopProduct, error)
	Groups(ctx context.Context) ([]db_models.CommunityGroup, error)
	Challenges(ctx context.Context) ([]db_models.Challenge, error)
	UserChallenges(ctx context.Context, userID uuid.UUID) ([]db_models.UserChallenge, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Products(ctx context.Context) ([]db_models.ShopProduct, error) {
	var products []db_models.ShopProduct
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *catalogRepository) Groups(ctx context.Context) ([]db_models.CommunityGroup, error) {
	var groups []db_models.CommunityGroup
	err := r.db.WithContext(ctx).Order("member_count DESC").Find(&groups).Error
	return groups, err
}

func (r *catalogRepository) Challenges(ctx context.Context) ([]db_models.Challenge, error) {
	var challenges []db_models.Challenge
	err := r.db.WithContext(ctx).Order("ends_at ASC").Find(&challenges).Error
	return challenges, err
}

func (r *catalogRepository) UserChallenges(ctx context.Context, userID uuid.UUID) ([]db_models.UserChallenge, error) {
	var rows []db_models.UserChallenge
	err := r.db.WithContext(ctx).
		Preload("Challenge").
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}
