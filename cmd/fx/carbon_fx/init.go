package carbon_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotrack/internal/repositories"
	"ecotrack/internal/services"
)

var Module = fx.Provide(
	provideCarbonRepo, provideCarbonService,
)

func provideCarbonRepo(db *gorm.DB) repositories.CarbonRepository {
	return repositories.NewCarbonRepository(db)
}

func provideCarbonService(carbonRepo repositories.CarbonRepository) services.CarbonService {
	return services.NewCarbonService(carbonRepo)
}
