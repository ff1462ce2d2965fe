package alert_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotrack/internal/repositories"
	"ecotrack/internal/services"
)

var Module = fx.Provide(
	provideAlertRepo, provideAlertService,
)

func provideAlertRepo(db *gorm.DB) repositories.AlertRepository {
	return repositories.NewAlertRepository(db)
}

func provideAlertService(alertRepo repositories.AlertRepository) services.AlertService {
	return services.NewAlertService(alertRepo)
}
