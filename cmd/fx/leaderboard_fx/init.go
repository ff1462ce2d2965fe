package leaderboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotrack/internal/repositories"
	"ecotrack/internal/services"
)

var Module = fx.Provide(
	provideLeaderboardRepo, provideLeaderboardService,
)

func provideLeaderboardRepo(db *gorm.DB) repositories.LeaderboardRepository {
	return repositories.NewLeaderboardRepository(db)
}

func provideLeaderboardService(leaderboardRepo repositories.LeaderboardRepository) services.LeaderboardService {
	return services.NewLeaderboardService(leaderboardRepo)
}
