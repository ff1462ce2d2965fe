package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecotrack/internal/models/db_models"
	"ecotrack/internal/models/request_models"
	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	"ecotrack/pkg/utils"
)

// expiringSoonDays is the cutoff for the aggregated "expiring soon" notice.
const expiringSoonDays = 3

type InventoryService interface {
	// List returns the user's items annotated with days-until-expiry and
	// severity, filtered by category ("All" or "" = no filter) and a
	// case-insensitive substring match on name.
	List(ctx context.Context, userID uuid.UUID, category, search string) ([]resp.InventoryItemView, error)
	ExpiryNotice(ctx context.Context, userID uuid.UUID) (*resp.ExpiryNotice, error)
	AddItem(ctx context.Context, userID uuid.UUID, req request_models.AddInventoryItemRequest) error
	DeleteItem(ctx context.Context, userID uuid.UUID, itemID string) error
}

type inventoryService struct {
	repo repositories.InventoryRepository
}

func NewInventoryService(repo repositories.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) List(ctx context.Context, userID uuid.UUID, category, search string) ([]resp.InventoryItemView, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	views := make([]resp.InventoryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, annotateItem(item, now))
	}
	return filterItems(views, category, search), nil
}

func (s *inventoryService) ExpiryNotice(ctx context.Context, userID uuid.UUID) (*resp.ExpiryNotice, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now()
	var names []string
	for _, item := range items {
		if utils.DaysUntil(item.ExpiryDate, now) <= expiringSoonDays {
			names = append(names, item.Name)
		}
	}

	notice := &resp.ExpiryNotice{
		Count:     len(names),
		ItemNames: names,
	}
	if len(names) > 0 {
		notice.Message = fmt.Sprintf("%d item(s) expiring soon: %s", len(names), strings.Join(names, ", "))
	}
	return notice, nil
}

func (s *inventoryService) AddItem(ctx context.Context, userID uuid.UUID, req request_models.AddInventoryItemRequest) error {
	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return utils.ErrDatabaseError
	}

	item := &db_models.InventoryItem{
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		ExpiryDate:  utils.DayOf(expiry),
		CarbonScore: req.CarbonScore,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, userID uuid.UUID, itemID string) error {
	if err := s.repo.Delete(ctx, userID, itemID); err != nil {
		return utils.ErrItemNotFound
	}
	return nil
}

// ---- pure helpers ----

func annotateItem(item db_models.InventoryItem, now time.Time) resp.InventoryItemView {
	days := utils.DaysUntil(item.ExpiryDate, now)
	return resp.InventoryItemView{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		ExpiryDate:      item.ExpiryDate.Format("2006-01-02"),
		CarbonScore:     item.CarbonScore,
		DaysUntilExpiry: days,
		Severity:        severityFor(days),
	}
}

// severityFor classifies days-until-expiry: within one day (including
// already expired) is urgent, within three is warning, otherwise ok.
func severityFor(days int) resp.ExpirySeverity {
	switch {
	case days <= 1:
		return resp.SeverityUrgent
	case days <= expiringSoonDays:
		return resp.SeverityWarning
	default:
		return resp.SeverityOk
	}
}

func filterItems(items []resp.InventoryItemView, category, search string) []resp.InventoryItemView {
	needle := strings.ToLower(search)
	filtered := make([]resp.InventoryItemView, 0, len(items))
	for _, item := range items {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
