package services

import (
	"context"
	"time"

	resp "ecotrack/internal/models/response_models"
	"ecotrack/internal/repositories"
	mem "ecotrack/pkg/memcache"
	"ecotrack/pkg/utils"
)

const standingsTTL = time.Minute

type LeaderboardService interface {
	// Standings returns the top accounts by eco points with 1-based
	// ranks. Results are cached briefly; standings a few seconds stale
	// are acceptable for a leaderboard screen.
	Standings(ctx context.Context, limit int) ([]resp.LeaderboardEntry, error)
}

type leaderboardService struct {
	repo  repositories.LeaderboardRepository
	cache *mem.StandingsCache[resp.LeaderboardEntry]
}

func NewLeaderboardService(repo repositories.LeaderboardRepository) LeaderboardService {
	return &leaderboardService{
		repo:  repo,
		cache: mem.NewStandingsCache[resp.LeaderboardEntry](standingsTTL),
	}
}

func (s *leaderboardService) Standings(ctx context.Context, limit int) ([]resp.LeaderboardEntry, error) {
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidLimit
	}

	if cached, ok := s.cache.Get(limit); ok {
		return cached, nil
	}

	accounts, err := s.repo.TopAccounts(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]resp.LeaderboardEntry, 0, len(accounts))
	for i, account := range accounts {
		entries = append(entries, resp.LeaderboardEntry{
			Rank:      i + 1,
			UserID:    account.ID.String(),
			Name:      account.Name,
			EcoPoints: account.EcoPoints,
			Level:     account.Level,
		})
	}

	s.cache.Set(limit, entries)
	return entries, nil
}
