package badge_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotrack/internal/repositories"
	"ecotrack/internal/services"
)

var Module = fx.Provide(
	provideBadgeRepo, provideBadgeService,
)

func provideBadgeRepo(db *gorm.DB) repositories.BadgeRepository {
	return repositories.NewBadgeRepository(db)
}

func provideBadgeService(badgeRepo repositories.BadgeRepository) services.BadgeService {
	return services.NewBadgeService(badgeRepo)
}
