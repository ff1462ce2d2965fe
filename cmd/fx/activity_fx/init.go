package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotrack/internal/repositories"
	"ecotrack/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService,
)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository, accountRepo repositories.AccountRepository, alertRepo repositories.AlertRepository) services.ActivityService {
	return services.NewActivityService(activityRepo, accountRepo, alertRepo)
}
