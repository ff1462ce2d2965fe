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
	"ecotrack/pkg/utils"
)

type fakeCarbonRepo struct {
	entries  []db_models.CarbonEntry
	inserted []db_models.CarbonEntry
	err      error
}

func (f *fakeCarbonRepo) ListForDay(_ context.Context, _ uuid.UUID, day time.Time) ([]db_models.CarbonEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.CarbonEntry
	for _, e := range f.entries {
		if e.Date.Equal(day) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCarbonRepo) ListSince(_ context.Context, _ uuid.UUID, from time.Time) ([]db_models.CarbonEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.CarbonEntry
	for _, e := range f.entries {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCarbonRepo) Insert(_ context.Context, entry *db_models.CarbonEntry) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, *entry)
	return nil
}

func carbonEntry(daysAgo int, amount float64, category db_models.CarbonCategory) db_models.CarbonEntry {
	return db_models.CarbonEntry{
		Date:     utils.DaysAgo(time.Now(), daysAgo),
		Amount:   amount,
		Category: category,
	}
}

func TestCarbonSummary(t *testing.T) {
	repo := &fakeCarbonRepo{entries: []db_models.CarbonEntry{
		carbonEntry(0, 1.2, db_models.CategoryTransport),
		carbonEntry(0, 2.3, db_models.CategoryFood),
		carbonEntry(3, 4.0, db_models.CategoryEnergy),
		carbonEntry(20, 10.0, db_models.CategoryWaste),
	}}
	svc := NewCarbonService(repo)

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 3.5, summary.Today)
	assert.Equal(t, 7.5, summary.Week)
	assert.Equal(t, 17.5, summary.Month)
	assert.Equal(t, float64(DailyCarbonTarget), summary.Target)
}

func TestCarbonSummaryEmpty(t *testing.T) {
	svc := NewCarbonService(&fakeCarbonRepo{})

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Zero(t, summary.Today)
	assert.Zero(t, summary.Week)
	assert.Zero(t, summary.Month)
}

func TestCarbonSummaryWindowsNested(t *testing.T) {
	repo := &fakeCarbonRepo{entries: []db_models.CarbonEntry{
		carbonEntry(0, 2.0, db_models.CategoryTransport),
		carbonEntry(5, 3.0, db_models.CategoryFood),
		carbonEntry(25, 4.0, db_models.CategoryEnergy),
	}}
	svc := NewCarbonService(repo)

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	// Every entry counted today is also in the week, and every weekly
	// entry is also in the month.
	assert.LessOrEqual(t, summary.Today, summary.Week)
	assert.LessOrEqual(t, summary.Week, summary.Month)
}

func TestCarbonWeeklyTrend(t *testing.T) {
	repo := &fakeCarbonRepo{entries: []db_models.CarbonEntry{
		carbonEntry(0, 2.5, db_models.CategoryTransport),
		carbonEntry(3, 1.0, db_models.CategoryFood),
		carbonEntry(3, 0.5, db_models.CategoryFood),
	}}
	svc := NewCarbonService(repo)

	points, err := svc.WeeklyTrend(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, points, 7)

	for i, label := range weekdayLabels {
		assert.Equal(t, label, points[i].Label)
	}
	// Last point is today, index 3 is three days ago.
	assert.Equal(t, 2.5, points[6].Value)
	assert.Equal(t, 1.5, points[3].Value)
	assert.Zero(t, points[0].Value)
}

func TestCategoryBreakdown(t *testing.T) {
	tests := []struct {
		name    string
		entries []db_models.CarbonEntry
		want    []int // transport, energy, food, waste
	}{
		{
			name: "mixed categories",
			entries: []db_models.CarbonEntry{
				carbonEntry(1, 3, db_models.CategoryTransport),
				carbonEntry(2, 3, db_models.CategoryEnergy),
				carbonEntry(3, 3, db_models.CategoryFood),
				carbonEntry(4, 1, db_models.CategoryWaste),
			},
			want: []int{30, 30, 30, 10},
		},
		{
			name: "single category",
			entries: []db_models.CarbonEntry{
				carbonEntry(1, 5, db_models.CategoryFood),
			},
			want: []int{0, 0, 100, 0},
		},
		{
			name:    "no entries",
			entries: nil,
			want:    []int{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCarbonService(&fakeCarbonRepo{entries: tt.entries})

			slices, err := svc.CategoryBreakdown(context.Background(), uuid.New())
			require.NoError(t, err)
			require.Len(t, slices, 4)

			labels := []string{"Transport", "Energy", "Food", "Waste"}
			for i, slice := range slices {
				assert.Equal(t, labels[i], slice.Label)
				assert.Equal(t, tt.want[i], slice.Value)
			}
		})
	}
}

func TestCarbonDashboard(t *testing.T) {
	repo := &fakeCarbonRepo{entries: []db_models.CarbonEntry{
		carbonEntry(0, 2.0, db_models.CategoryTransport),
		carbonEntry(2, 6.0, db_models.CategoryFood),
	}}
	svc := NewCarbonService(repo)

	dashboard, err := svc.Dashboard(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 2.0, dashboard.Summary.Today)
	assert.Len(t, dashboard.Trend, 7)
	assert.Len(t, dashboard.Breakdown, 4)
}

func TestCarbonDashboardRepoFailure(t *testing.T) {
	svc := NewCarbonService(&fakeCarbonRepo{err: errors.New("connection refused")})

	dashboard, err := svc.Dashboard(context.Background(), uuid.New())
	assert.Nil(t, dashboard)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestAddEntry(t *testing.T) {
	repo := &fakeCarbonRepo{}
	svc := NewCarbonService(repo)
	userID := uuid.New()

	err := svc.AddEntry(context.Background(), userID, request_models.AddCarbonEntryRequest{
		Date:     "2026-08-28",
		Amount:   4.2,
		Category: "transport",
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)

	got := repo.inserted[0]
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, db_models.CategoryTransport, got.Category)
	assert.Equal(t, 4.2, got.Amount)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestAddEntryBadCategory(t *testing.T) {
	repo := &fakeCarbonRepo{}
	svc := NewCarbonService(repo)

	err := svc.AddEntry(context.Background(), uuid.New(), request_models.AddCarbonEntryRequest{
		Date:     "2026-08-28",
		Amount:   1,
		Category: "aviation",
	})
	assert.ErrorIs(t, err, utils.ErrBadCategory)
	assert.Empty(t, repo.inserted)
}
