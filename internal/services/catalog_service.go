package services

import (
	"context"

	"github.com/google/uuid"

	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	"ecotrack/pkg/utils"
)

type CatalogService interface {
	ShopProducts(ctx context.Context) ([]resp.ShopProductView, error)
	CommunityGroups(ctx context.Context) ([]resp.CommunityGroupView, error)
	Challenges(ctx context.Context) ([]resp.ChallengeView, error)
	UserChallenges(ctx context.Context, userID uuid.UUID) ([]resp.UserChallengeView, error)
}

type catalogService struct {
	repo repositories.CatalogRepository
}

func NewCatalogService(repo repositories.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ShopProducts(ctx context.Context) ([]resp.ShopProductView, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.ShopProductView, 0, len(products))
	for _, p := range products {
		views = append(views, resp.ShopProductView{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			EcoRating:   p.EcoRating,
		})
	}
	return views, nil
}

func (s *catalogService) CommunityGroups(ctx context.Context) ([]resp.CommunityGroupView, error) {
	groups, err := s.repo.Groups(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.CommunityGroupView, 0, len(groups))
	for _, g := range groups {
		views = append(views, resp.CommunityGroupView{
			ID:          g.ID.String(),
			Name:        g.Name,
			Description: g.Description,
			MemberCount: g.MemberCount,
		})
	}
	return views, nil
}

func (s *catalogService) Challenges(ctx context.Context) ([]resp.ChallengeView, error) {
	challenges, err := s.repo.Challenges(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.ChallengeView, 0, len(challenges))
	for _, c := range challenges {
		views = append(views, resp.ChallengeView{
			ID:          c.ID.String(),
			Title:       c.Title,
			Description: c.Description,
			Points:      c.Points,
			EndsAt:      c.EndsAt.Format("2006-01-02"),
		})
	}
	return views, nil
}

func (s *catalogService) UserChallenges(ctx context.Context, userID uuid.UUID) ([]resp.UserChallengeView, error) {
	rows, err := s.repo.UserChallenges(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.UserChallengeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, resp.UserChallengeView{
			Challenge: resp.ChallengeView{
				ID:          row.Challenge.ID.String(),
				Title:       row.Challenge.Title,
				Description: row.Challenge.Description,
				Points:      row.Challenge.Points,
				EndsAt:      row.Challenge.EndsAt.Format("2006-01-02"),
			},
			Progress: row.Progress,
			JoinedAt: row.JoinedAt,
		})
	}
	return views, nil
}
