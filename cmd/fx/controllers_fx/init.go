package controllers_fx

import (
	"go.uber.org/fx"

	"ecotrack/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCarbonController),
	fx.Provide(controllers.NewEnergyController),
	fx.Provide(controllers.NewInventoryController),
	fx.Provide(controllers.NewBadgeController),
	fx.Provide(controllers.NewAlertController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewLeaderboardController))
