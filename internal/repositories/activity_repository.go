package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecotrack/internal/models/db_models"
)

// ActivityRepository covers the three per-user activity logs shown on the
// EcoMiles / EcoCycle screens: trips, meals, and waste actions.
type ActivityRepository interface {
	RecentTrips(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Trip, error)
	RecentMeals(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Meal, error)
	RecentWasteActions(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.WasteAction, error)

	InsertTrip(ctx context.Context, trip *db_models.Trip) error
	InsertMeal(ctx context.Context, meal *db_models.Meal) error
	InsertWasteAction(ctx context.Context, action *db_models.WasteAction) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) RecentTrips(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&trips).Error
	return trips, err
}

func (r *activityRepository) RecentMeals(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.Meal, error) {
	var meals []db_models.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (r *activityRepository) RecentWasteActions(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.WasteAction, error) {
	var actions []db_models.WasteAction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&actions).Error
	return actions, err
}

func (r *activityRepository) InsertTrip(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *activityRepository) InsertMeal(ctx context.Context, meal *db_models.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *activityRepository) InsertWasteAction(ctx context.Context, action *db_models.WasteAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}
