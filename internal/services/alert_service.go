package services

import (
	"context"

	"github.com/google/uuid"

	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	"ecotrack/pkg/utils"
)

type AlertService interface {
	List(ctx context.Context, userID uuid.UUID) (*resp.AlertList, error)
	MarkRead(ctx context.Context, userID uuid.UUID, alertID string) error
}

type alertService struct {
	repo repositories.AlertRepository
}

func NewAlertService(repo repositories.AlertRepository) AlertService {
	return &alertService{repo: repo}
}

func (s *alertService) List(ctx context.Context, userID uuid.UUID) (*resp.AlertList, error) {
	alerts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]resp.AlertView, 0, len(alerts))
	unread := 0
	for _, alert := range alerts {
		if !alert.Read {
			unread++
		}
		views = append(views, resp.AlertView{
			ID:        alert.ID.String(),
			Title:     alert.Title,
			Message:   alert.Message,
			Type:      alert.Type,
			Read:      alert.Read,
			CreatedAt: alert.CreatedAt,
		})
	}

	return &resp.AlertList{Alerts: views, UnreadCount: unread}, nil
}

func (s *alertService) MarkRead(ctx context.Context, userID uuid.UUID, alertID string) error {
	updated, err := s.repo.MarkRead(ctx, userID, alertID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if updated == 0 {
		return utils.ErrAlertNotFound
	}
	return nil
}
