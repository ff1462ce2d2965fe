package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"ecotrack/internal/models/db_models"
	"ecotrack/internal/models/request_models"
	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	"ecotrack/pkg/utils"
)

type EnergyService interface {
	MonthlySummary(ctx context.Context, userID uuid.UUID) (*resp.EnergySummary, error)
	DailyTrend(ctx context.Context, userID uuid.UUID) ([]resp.TrendPoint, error)
	ApplianceBreakdown(ctx context.Context, userID uuid.UUID) ([]resp.ApplianceUsage, error)
	AddUsage(ctx context.Context, userID uuid.UUID, req request_models.AddEnergyUsageRequest) error
}

type energyService struct {
	repo repositories.EnergyRepository
}

func NewEnergyService(repo repositories.EnergyRepository) EnergyService {
	return &energyService{repo: repo}
}

// MonthlySummary sums usage and cost over the trailing 30 days and compares
// usage against the 30 days before that. An empty previous window reports a
// change of 0 rather than a meaningless percentage.
func (s *energyService) MonthlySummary(ctx context.Context, userID uuid.UUID) (*resp.EnergySummary, error) {
	now := time.Now()
	monthAgo := utils.DaysAgo(now, 30)

	current, err := s.repo.ListSince(ctx, userID, monthAgo)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	previous, err := s.repo.ListBetween(ctx, userID, utils.DaysAgo(now, 60), monthAgo)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var usage, cost float64
	for _, e := range current {
		usage += e.UsageKWh
		cost += e.Cost
	}
	var prevUsage float64
	for _, e := range previous {
		prevUsage += e.UsageKWh
	}

	return &resp.EnergySummary{
		MonthlyUsage:     utils.RoundTo1(usage),
		MonthlyCost:      utils.RoundTo1(cost),
		ChangePercentage: changePercentage(usage, prevUsage),
	}, nil
}

// DailyTrend buckets the trailing week of usage the same way the carbon
// trend does, 7 points labelled Mon..Sun.
func (s *energyService) DailyTrend(ctx context.Context, userID uuid.UUID) ([]resp.TrendPoint, error) {
	now := time.Now()

	rows, err := s.repo.ListSince(ctx, userID, utils.DaysAgo(now, 7))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byDay := make(map[time.Time]float64, len(rows))
	for _, row := range rows {
		byDay[utils.DayOf(row.Date)] += row.UsageKWh
	}

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

// ApplianceBreakdown groups the trailing 30 days of usage by appliance
// name with integer share percentages, heaviest consumers first.
func (s *energyService) ApplianceBreakdown(ctx context.Context, userID uuid.UUID) ([]resp.ApplianceUsage, error) {
	rows, err := s.repo.ListSince(ctx, userID, utils.DaysAgo(time.Now(), 30))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byName := make(map[string]float64)
	var total float64
	for _, row := range rows {
		byName[row.ApplianceName] += row.UsageKWh
		total += row.UsageKWh
	}

	breakdown := make([]resp.ApplianceUsage, 0, len(byName))
	for name, usage := range byName {
		breakdown = append(breakdown, resp.ApplianceUsage{
			Name:       name,
			UsageKWh:   utils.RoundTo1(usage),
			Percentage: utils.RoundPercent(usage, total),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].UsageKWh != breakdown[j].UsageKWh {
			return breakdown[i].UsageKWh > breakdown[j].UsageKWh
		}
		return breakdown[i].Name < breakdown[j].Name
	})
	return breakdown, nil
}

func (s *energyService) AddUsage(ctx context.Context, userID uuid.UUID, req request_models.AddEnergyUsageRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return utils.ErrDatabaseError
	}

	entry := &db_models.EnergyUsageEntry{
		UserID:        userID,
		Date:          utils.DayOf(date),
		ApplianceName: req.ApplianceName,
		UsageKWh:      req.UsageKWh,
		Cost:          req.Cost,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func changePercentage(current, previous float64) int {
	if previous == 0 {
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}
