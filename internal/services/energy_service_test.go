package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/models/db_models"
	"ecotrack/internal/models/request_models"
	"ecotrack/pkg/utils"
)

type fakeEnergyRepo struct {
	entries  []db_models.EnergyUsageEntry
	inserted []db_models.EnergyUsageEntry
	err      error
}

func (f *fakeEnergyRepo) ListSince(_ context.Context, _ uuid.UUID, from time.Time) ([]db_models.EnergyUsageEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.EnergyUsageEntry
	for _, e := range f.entries {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnergyRepo) ListBetween(_ context.Context, _ uuid.UUID, from, to time.Time) ([]db_models.EnergyUsageEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.EnergyUsageEntry
	for _, e := range f.entries {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnergyRepo) Insert(_ context.Context, entry *db_models.EnergyUsageEntry) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, *entry)
	return nil
}

func usageEntry(daysAgo int, appliance string, kwh, cost float64) db_models.EnergyUsageEntry {
	return db_models.EnergyUsageEntry{
		Date:          utils.DaysAgo(time.Now(), daysAgo),
		ApplianceName: appliance,
		UsageKWh:      kwh,
		Cost:          cost,
	}
}

func TestEnergyMonthlySummary(t *testing.T) {
	repo := &fakeEnergyRepo{entries: []db_models.EnergyUsageEntry{
		usageEntry(5, "Fridge", 100, 25),
		usageEntry(10, "Heater", 50, 12.5),
		usageEntry(45, "Fridge", 100, 25), // previous window
	}}
	svc := NewEnergyService(repo)

	summary, err := svc.MonthlySummary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 150.0, summary.MonthlyUsage)
	assert.Equal(t, 37.5, summary.MonthlyCost)
	assert.Equal(t, 50, summary.ChangePercentage)
}

func TestEnergyMonthlySummaryNoData(t *testing.T) {
	svc := NewEnergyService(&fakeEnergyRepo{})

	summary, err := svc.MonthlySummary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, summary.MonthlyUsage)
	assert.Zero(t, summary.MonthlyCost)
	assert.Zero(t, summary.ChangePercentage)
}

func TestChangePercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     int
	}{
		{"both zero", 0, 0, 0},
		{"no previous data", 100, 0, 0},
		{"usage halved", 50, 100, -50},
		{"usage grew", 150, 100, 50},
		{"rounding", 110.4, 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, changePercentage(tt.current, tt.previous))
		})
	}
}

func TestEnergyDailyTrend(t *testing.T) {
	repo := &fakeEnergyRepo{entries: []db_models.EnergyUsageEntry{
		usageEntry(0, "AC", 4.5, 1),
		usageEntry(2, "Fridge", 1.5, 0.4),
		usageEntry(2, "AC", 2.0, 0.5),
	}}
	svc := NewEnergyService(repo)

	points, err := svc.DailyTrend(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, points, 7)

	assert.Equal(t, 4.5, points[6].Value)
	assert.Equal(t, 3.5, points[4].Value)
	assert.Zero(t, points[0].Value)
}

func TestApplianceBreakdown(t *testing.T) {
	repo := &fakeEnergyRepo{entries: []db_models.EnergyUsageEntry{
		usageEntry(1, "Heater", 30, 8),
		usageEntry(2, "Fridge", 40, 10),
		usageEntry(3, "Fridge", 20, 5),
		usageEntry(4, "AC", 30, 7),
	}}
	svc := NewEnergyService(repo)

	breakdown, err := svc.ApplianceBreakdown(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, breakdown, 3)

	// Heaviest first, ties by name.
	assert.Equal(t, "Fridge", breakdown[0].Name)
	assert.Equal(t, 60.0, breakdown[0].UsageKWh)
	assert.Equal(t, 50, breakdown[0].Percentage)
	assert.Equal(t, "AC", breakdown[1].Name)
	assert.Equal(t, "Heater", breakdown[2].Name)
	assert.Equal(t, 25, breakdown[1].Percentage)
}

func TestAddUsage(t *testing.T) {
	repo := &fakeEnergyRepo{}
	svc := NewEnergyService(repo)
	userID := uuid.New()

	err := svc.AddUsage(context.Background(), userID, request_models.AddEnergyUsageRequest{
		Date:          "2026-08-27",
		ApplianceName: "Washing Machine",
		UsageKWh:      2.4,
		Cost:          0.7,
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)

	got := repo.inserted[0]
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "Washing Machine", got.ApplianceName)
	assert.Equal(t, 2.4, got.UsageKWh)
}
