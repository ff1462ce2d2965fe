package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ecotrack/internal/models/db_models"
	"ecotrack/internal/models/request_models"
	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	"ecotrack/pkg/utils"
)

// DailyCarbonTarget is the fixed dashboard target in kg CO2e. The profile
// carries a per-user daily goal, but the summary has always used this
// constant; wiring the goal in is pending product clarification.
const DailyCarbonTarget = 150

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type CarbonService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*resp.CarbonSummary, error)
	WeeklyTrend(ctx context.Context, userID uuid.UUID) ([]resp.TrendPoint, error)
	CategoryBreakdown(ctx context.Context, userID uuid.UUID) ([]resp.BreakdownSlice, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*resp.CarbonDashboard, error)
	AddEntry(ctx context.Context, userID uuid.UUID, req request_models.AddCarbonEntryRequest) error
}

type carbonService struct {
	repo repositories.CarbonRepository
}

func NewCarbonService(repo repositories.CarbonRepository) CarbonService {
	return &carbonService{repo: repo}
}

// Summary computes today / trailing-7-day / trailing-30-day totals.
// Today is an equality match on the calendar day; the wider windows are
// inclusive date >= lower-bound filters. Empty windows sum to zero.
func (s *carbonService) Summary(ctx context.Context, userID uuid.UUID) (*resp.CarbonSummary, error) {
	now := time.Now()

	todayRows, err := s.repo.ListForDay(ctx, userID, utils.DayOf(now))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	weekRows, err := s.repo.ListSince(ctx, userID, utils.DaysAgo(now, 7))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	monthRows, err := s.repo.ListSince(ctx, userID, utils.DaysAgo(now, 30))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.CarbonSummary{
		Today:  utils.RoundTo1(sumAmounts(todayRows)),
		Week:   utils.RoundTo1(sumAmounts(weekRows)),
		Month:  utils.RoundTo1(sumAmounts(monthRows)),
		Target: DailyCarbonTarget,
	}, nil
}

// WeeklyTrend returns exactly 7 points: point i sums entries dated
// today-(6-i) days, labelled with the fixed Mon..Sun array.
func (s *carbonService) WeeklyTrend(ctx context.Context, userID uuid.UUID) ([]resp.TrendPoint, error) {
	now := time.Now()

	rows, err := s.repo.ListSince(ctx, userID, utils.DaysAgo(now, 7))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byDay := bucketByDay(rows)
	points := make([]resp.TrendPoint, 0, len(weekdayLabels))
	for i, label := range weekdayLabels {
		day := utils.DaysAgo(now, 6-i)
		points = append(points, resp.TrendPoint{
			Label: label,
			Value: utils.RoundTo1(byDay[day]),
		})
	}
	return points, nil
}

// CategoryBreakdown returns one integer percentage per fixed category for
// the trailing 30-day window. A zero total yields four zeros; independently
// rounded values are not renormalized to sum to 100.
func (s *carbonService) CategoryBreakdown(ctx context.Context, userID uuid.UUID) ([]resp.BreakdownSlice, error) {
	rows, err := s.repo.ListSince(ctx, userID, utils.DaysAgo(time.Now(), 30))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return breakdownOf(rows), nil
}

// Dashboard fans out the three aggregations concurrently; any failure
// fails the whole join and no partial result is returned.
func (s *carbonService) Dashboard(ctx context.Context, userID uuid.UUID) (*resp.CarbonDashboard, error) {
	g, gctx := errgroup.WithContext(ctx)

	var dashboard resp.CarbonDashboard
	g.Go(func() error {
		summary, err := s.Summary(gctx, userID)
		if err != nil {
			return err
		}
		dashboard.Summary = *summary
		return nil
	})
	g.Go(func() error {
		trend, err := s.WeeklyTrend(gctx, userID)
		if err != nil {
			return err
		}
		dashboard.Trend = trend
		return nil
	})
	g.Go(func() error {
		breakdown, err := s.CategoryBreakdown(gctx, userID)
		if err != nil {
			return err
		}
		dashboard.Breakdown = breakdown
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *carbonService) AddEntry(ctx context.Context, userID uuid.UUID, req request_models.AddCarbonEntryRequest) error {
	category := db_models.CarbonCategory(req.Category)
	if !category.Valid() {
		return utils.ErrBadCategory
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.ErrDatabaseError
	}

	entry := &db_models.CarbonEntry{
		UserID:   userID,
		Date:     utils.DayOf(date),
		Amount:   req.Amount,
		Category: category,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// ---- pure reductions ----

func sumAmounts(rows []db_models.CarbonEntry) float64 {
	var sum float64
	for _, row := range rows {
		sum += row.Amount
	}
	return sum
}

func bucketByDay(rows []db_models.CarbonEntry) map[time.Time]float64 {
	byDay := make(map[time.Time]float64, len(rows))
	for _, row := range rows {
		byDay[utils.DayOf(row.Date)] += row.Amount
	}
	return byDay
}

func breakdownOf(rows []db_models.CarbonEntry) []resp.BreakdownSlice {
	sums := make(map[db_models.CarbonCategory]float64, len(db_models.CarbonCategories))
	var total float64
	for _, row := range rows {
		sums[row.Category] += row.Amount
		total += row.Amount
	}

	slices := make([]resp.BreakdownSlice, 0, len(db_models.CarbonCategories))
	for _, category := range db_models.CarbonCategories {
		slices = append(slices, resp.BreakdownSlice{
			Label: categoryLabel(category),
			Value: utils.RoundPercent(sums[category], total),
		})
	}
	return slices
}

func categoryLabel(c db_models.CarbonCategory) string {
	switch c {
	case db_models.CategoryTransport:
		return "Transport"
	case db_models.CategoryEnergy:
		return "Energy"
	case db_models.CategoryFood:
		return "Food"
	case db_models.CategoryWaste:
		return "Waste"
	default:
		return string(c)
	}
}
