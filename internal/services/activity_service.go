package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ecotrack/internal/models/db_models"
	"ecotrack/internal/models/request_models"
	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	"ecotrack/pkg/utils"
)

// The activity screens show the ten latest records of each type.
const recentActivityLimit = 10

type ActivityService interface {
	RecentTrips(ctx context.Context, userID uuid.UUID) ([]resp.TripView, error)
	RecentMeals(ctx context.Context, userID uuid.UUID) ([]resp.MealView, error)
	RecentWasteActions(ctx context.Context, userID uuid.UUID) ([]resp.WasteActionView, error)

	AddTrip(ctx context.Context, userID uuid.UUID, req request_models.AddTripRequest) error
	AddMeal(ctx context.Context, userID uuid.UUID, req request_models.AddMealRequest) error
	AddWasteAction(ctx context.Context, userID uuid.UUID, req request_models.AddWasteActionRequest) error
}

type activityService struct {
	repo     repositories.ActivityRepository
	accounts repositories.AccountRepository
	alerts   repositories.AlertRepository
}

func NewActivityService(repo repositories.ActivityRepository, accounts repositories.AccountRepository, alerts repositories.AlertRepository) ActivityService {
	return &activityService{repo: repo, accounts: accounts, alerts: alerts}
}

func (s *activityService) RecentTrips(ctx context.Context, userID uuid.UUID) ([]resp.TripView, error) {
	trips, err := s.repo.RecentTrips(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.TripView, 0, len(trips))
	for _, trip := range trips {
		views = append(views, resp.TripView{
			ID:          trip.ID.String(),
			Date:        trip.Date.Format("2006-01-02"),
			Origin:      trip.Origin,
			Destination: trip.Destination,
			DistanceKm:  trip.DistanceKm,
			Mode:        trip.Mode,
			Emissions:   trip.Emissions,
		})
	}
	return views, nil
}

func (s *activityService) RecentMeals(ctx context.Context, userID uuid.UUID) ([]resp.MealView, error) {
	meals, err := s.repo.RecentMeals(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.MealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, resp.MealView{
			ID:          meal.ID.String(),
			Date:        meal.Date.Format("2006-01-02"),
			Name:        meal.Name,
			MealType:    meal.MealType,
			CarbonScore: meal.CarbonScore,
		})
	}
	return views, nil
}

func (s *activityService) RecentWasteActions(ctx context.Context, userID uuid.UUID) ([]resp.WasteActionView, error) {
	actions, err := s.repo.RecentWasteActions(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.WasteActionView, 0, len(actions))
	for _, action := range actions {
		views = append(views, resp.WasteActionView{
			ID:       action.ID.String(),
			Date:     action.Date.Format("2006-01-02"),
			Action:   action.Action,
			Category: action.Category,
			Points:   action.Points,
		})
	}
	return views, nil
}

func (s *activityService) AddTrip(ctx context.Context, userID uuid.UUID, req request_models.AddTripRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.ErrDatabaseError
	}

	trip := &db_models.Trip{
		UserID:      userID,
		Date:        utils.DayOf(date),
		Origin:      req.Origin,
		Destination: req.Destination,
		DistanceKm:  req.DistanceKm,
		Mode:        req.Mode,
		Emissions:   req.Emissions,
	}
	if err := s.repo.InsertTrip(ctx, trip); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *activityService) AddMeal(ctx context.Context, userID uuid.UUID, req request_models.AddMealRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.ErrDatabaseError
	}

	meal := &db_models.Meal{
		UserID:      userID,
		Date:        utils.DayOf(date),
		Name:        req.Name,
		MealType:    req.MealType,
		CarbonScore: req.CarbonScore,
	}
	if err := s.repo.InsertMeal(ctx, meal); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// AddWasteAction records the action and credits its points to the
// account's eco points, which feed the leaderboard. A points credit
// also raises a success alert so the user sees it on the alerts screen.
func (s *activityService) AddWasteAction(ctx context.Context, userID uuid.UUID, req request_models.AddWasteActionRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.ErrDatabaseError
	}

	action := &db_models.WasteAction{
		UserID:   userID,
		Date:     utils.DayOf(date),
		Action:   req.Action,
		Category: req.Category,
		Points:   req.Points,
	}
	if err := s.repo.InsertWasteAction(ctx, action); err != nil {
		return utils.ErrDatabaseError
	}

	if req.Points > 0 {
		if err := s.accounts.AddEcoPoints(ctx, userID.String(), req.Points); err != nil {
			return utils.ErrDatabaseError
		}
		if err := s.alerts.Insert(ctx, &db_models.Alert{
			UserID:  userID,
			Title:   "Eco points earned",
			Message: fmt.Sprintf("You earned %d eco points for: %s", req.Points, req.Action),
			Type:    "success",
		}); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}
