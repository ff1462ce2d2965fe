package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/models/db_models"
	"ecotrack/pkg/utils"
)

type fakeAlertRepo struct {
	alerts  []db_models.Alert
	updated int64
	err     error
}

func (f *fakeAlertRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]db_models.Alert, error) {
	return f.alerts, f.err
}

func (f *fakeAlertRepo) MarkRead(_ context.Context, _ uuid.UUID, _ string) (int64, error) {
	return f.updated, f.err
}

func (f *fakeAlertRepo) Insert(_ context.Context, alert *db_models.Alert) error {
	f.alerts = append(f.alerts, *alert)
	return f.err
}

func TestAlertList(t *testing.T) {
	repo := &fakeAlertRepo{alerts: []db_models.Alert{
		{Title: "Milk expiring", Type: "warning", Read: false},
		{Title: "Badge earned", Type: "success", Read: true},
		{Title: "Weekly report", Type: "info", Read: false},
	}}
	svc := NewAlertService(repo)

	list, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Len(t, list.Alerts, 3)
	assert.Equal(t, 2, list.UnreadCount)
	assert.Equal(t, "Milk expiring", list.Alerts[0].Title)
}

func TestAlertListEmpty(t *testing.T) {
	svc := NewAlertService(&fakeAlertRepo{})

	list, err := svc.List(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, list.Alerts)
	assert.Zero(t, list.UnreadCount)
}

func TestMarkRead(t *testing.T) {
	svc := NewAlertService(&fakeAlertRepo{updated: 1})
	assert.NoError(t, svc.MarkRead(context.Background(), uuid.New(), uuid.NewString()))
}

func TestMarkReadNotFound(t *testing.T) {
	svc := NewAlertService(&fakeAlertRepo{updated: 0})
	err := svc.MarkRead(context.Background(), uuid.New(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrAlertNotFound)
}
