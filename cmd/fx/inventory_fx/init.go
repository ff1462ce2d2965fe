package inventory_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ecotrack/internal/repositories"
	"ecotrack/internal/services"
)

var Module = fx.Provide(
	provideInventoryRepo, provideInventoryService,
)

func provideInventoryRepo(db *gorm.DB) repositories.InventoryRepository {
	return repositories.NewInventoryRepository(db)
}

func provideInventoryService(inventoryRepo repositories.InventoryRepository) services.InventoryService {
	return services.NewInventoryService(inventoryRepo)
}
