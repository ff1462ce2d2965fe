package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/models/db_models"
	"ecotrack/internal/models/request_models"
	resp "ecotrack/internal/models/response_models"
	"ecotrack/pkg/utils"
)

type fakeInventoryRepo struct {
	items    []db_models.InventoryItem
	inserted []db_models.InventoryItem
	err      error
}

func (f *fakeInventoryRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]db_models.InventoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeInventoryRepo) Insert(_ context.Context, item *db_models.InventoryItem) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, *item)
	return nil
}

func (f *fakeInventoryRepo) Delete(_ context.Context, _ uuid.UUID, _ string) error {
	return f.err
}

func item(name, category string, expiresInDays int) db_models.InventoryItem {
	return db_models.InventoryItem{
		BaseModel:  db_models.BaseModel{ID: uuid.New()},
		Name:       name,
		Category:   category,
		ExpiryDate: utils.DayOf(time.Now().AddDate(0, 0, expiresInDays)),
	}
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		days int
		want resp.ExpirySeverity
	}{
		{-2, resp.SeverityUrgent},
		{0, resp.SeverityUrgent},
		{1, resp.SeverityUrgent},
		{2, resp.SeverityWarning},
		{3, resp.SeverityWarning},
		{4, resp.SeverityOk},
		{30, resp.SeverityOk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, severityFor(tt.days), "days=%d", tt.days)
	}
}

func TestInventoryListAnnotates(t *testing.T) {
	repo := &fakeInventoryRepo{items: []db_models.InventoryItem{
		item("Milk", "Dairy", 0),
		item("Yogurt", "Dairy", 2),
		item("Rice", "Pantry", 60),
	}}
	svc := NewInventoryService(repo)

	views, err := svc.List(context.Background(), uuid.New(), "", "")
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, resp.SeverityUrgent, views[0].Severity)
	assert.Equal(t, resp.SeverityWarning, views[1].Severity)
	assert.Equal(t, resp.SeverityOk, views[2].Severity)
	assert.Equal(t, 2, views[1].DaysUntilExpiry)
}

func TestInventoryListFilters(t *testing.T) {
	repo := &fakeInventoryRepo{items: []db_models.InventoryItem{
		item("Milk", "Dairy", 5),
		item("Almond Milk", "Drinks", 10),
		item("Cheddar", "Dairy", 12),
	}}
	svc := NewInventoryService(repo)

	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{"no filter", "", "", []string{"Milk", "Almond Milk", "Cheddar"}},
		{"category All is no filter", "All", "", []string{"Milk", "Almond Milk", "Cheddar"}},
		{"by category", "Dairy", "", []string{"Milk", "Cheddar"}},
		{"search is case-insensitive", "", "milk", []string{"Milk", "Almond Milk"}},
		{"filters are conjunctive", "Dairy", "milk", []string{"Milk"}},
		{"no match", "Dairy", "juice", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := svc.List(context.Background(), uuid.New(), tt.category, tt.search)
			require.NoError(t, err)

			var names []string
			for _, v := range views {
				names = append(names, v.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestExpiryNotice(t *testing.T) {
	repo := &fakeInventoryRepo{items: []db_models.InventoryItem{
		item("Milk", "Dairy", 0),
		item("Yogurt", "Dairy", 2),
		item("Rice", "Pantry", 60),
	}}
	svc := NewInventoryService(repo)

	notice, err := svc.ExpiryNotice(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 2, notice.Count)
	assert.Equal(t, []string{"Milk", "Yogurt"}, notice.ItemNames)
	assert.Equal(t, "2 item(s) expiring soon: Milk, Yogurt", notice.Message)
}

func TestExpiryNoticeNothingExpiring(t *testing.T) {
	repo := &fakeInventoryRepo{items: []db_models.InventoryItem{
		item("Rice", "Pantry", 60),
	}}
	svc := NewInventoryService(repo)

	notice, err := svc.ExpiryNotice(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, notice.Count)
	assert.Empty(t, notice.Message)
}

func TestAddInventoryItem(t *testing.T) {
	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo)
	userID := uuid.New()

	err := svc.AddItem(context.Background(), userID, request_models.AddInventoryItemRequest{
		Name:       "Milk",
		Category:   "Dairy",
		Quantity:   1,
		Unit:       "L",
		ExpiryDate: "2026-09-01",
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)

	got := repo.inserted[0]
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got.ExpiryDate)
}

func TestDeleteItemNotFound(t *testing.T) {
	repo := &fakeInventoryRepo{err: errors.New("no rows deleted")}
	svc := NewInventoryService(repo)

	err := svc.DeleteItem(context.Background(), uuid.New(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrItemNotFound)
}
