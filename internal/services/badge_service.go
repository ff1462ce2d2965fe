package services

import (
	"context"

	"github.com/google/uuid"

	"ecotrack/internal/models/db_models"
	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	"ecotrack/pkg/utils"
)

type BadgeService interface {
	// UserBadges returns one entry per catalog badge with the user's
	// earned flag and progress joined in. Output length always equals
	// the catalog length; stale join rows pointing at unknown badges
	// are ignored.
	UserBadges(ctx context.Context, userID uuid.UUID) ([]resp.BadgeView, error)
}

type badgeService struct {
	repo repositories.BadgeRepository
}

func NewBadgeService(repo repositories.BadgeRepository) BadgeService {
	return &badgeService{repo: repo}
}

func (s *badgeService) UserBadges(ctx context.Context, userID uuid.UUID) ([]resp.BadgeView, error) {
	catalog, err := s.repo.AllBadges(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	earned, err := s.repo.UserBadges(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return joinBadges(catalog, earned), nil
}

func joinBadges(catalog []db_models.Badge, earned []db_models.UserBadge) []resp.BadgeView {
	byBadge := make(map[uuid.UUID]db_models.UserBadge, len(earned))
	for _, row := range earned {
		byBadge[row.BadgeID] = row
	}

	views := make([]resp.BadgeView, 0, len(catalog))
	for _, badge := range catalog {
		view := resp.BadgeView{
			ID:          badge.ID.String(),
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
		}
		if row, ok := byBadge[badge.ID]; ok {
			view.Earned = true
			view.Progress = row.Progress
			view.EarnedAt = row.EarnedAt
		}
		views = append(views, view)
	}
	return views
}
