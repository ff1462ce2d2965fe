package energy_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotrack/internal/repositories"
	"ecotrack/internal/services"
)

var Module = fx.Provide(
	provideEnergyRepo, provideEnergyService,
)

func provideEnergyRepo(db *gorm.DB) repositories.EnergyRepository {
	return repositories.NewEnergyRepository(db)
}

func provideEnergyService(energyRepo repositories.EnergyRepository) services.EnergyService {
	return services.NewEnergyService(energyRepo)
}
