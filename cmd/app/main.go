package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"ecotrack/cmd/fx/account_fx"
	"ecotrack/cmd/fx/activity_fx"
	"ecotrack/cmd/fx/alert_fx"
	"ecotrack/cmd/fx/badge_fx"
	"ecotrack/cmd/fx/carbon_fx"
	"ecotrack/cmd/fx/catalog_fx"
	"ecotrack/cmd/fx/controllers_fx"
	"ecotrack/cmd/fx/db_fx"
	"ecotrack/cmd/fx/energy_fx"
	"ecotrack/cmd/fx/inventory_fx"
	"ecotrack/cmd/fx/leaderboard_fx"
	"ecotrack/cmd/fx/mail_fx"
	"ecotrack/internal/api/controllers"
	"ecotrack/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		carbon_fx.Module,
		energy_fx.Module,
		inventory_fx.Module,
		badge_fx.Module,
		alert_fx.Module,
		activity_fx.Module,
		catalog_fx.Module,
		leaderboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	carbonController *controllers.CarbonController,
	energyController *controllers.EnergyController,
	inventoryController *controllers.InventoryController,
	badgeController *controllers.BadgeController,
	alertController *controllers.AlertController,
	activityController *controllers.ActivityController,
	catalogController *controllers.CatalogController,
	leaderboardController *controllers.LeaderboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		carbonController,
		energyController,
		inventoryController,
		badgeController,
		alertController,
		activityController,
		catalogController,
		leaderboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	carbonController *controllers.CarbonController,
	energyController *controllers.EnergyController,
	inventoryController *controllers.InventoryController,
	badgeController *controllers.BadgeController,
	alertController *controllers.AlertController,
	activityController *controllers.ActivityController,
	catalogController *controllers.CatalogController,
	leaderboardController *controllers.LeaderboardController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.RequestPasswordReset)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	carbon := r.Group("/carbon", middleware.JWTAuthMiddleware())
	carbon.GET("/summary", carbonController.GetSummary)
	carbon.GET("/trend", carbonController.GetWeeklyTrend)
	carbon.GET("/breakdown", carbonController.GetCategoryBreakdown)
	carbon.GET("/dashboard", carbonController.GetDashboard)
	carbon.POST("/entries", carbonController.AddEntry)

	energy := r.Group("/energy", middleware.JWTAuthMiddleware())
	energy.GET("/summary", energyController.GetMonthlySummary)
	energy.GET("/trend", energyController.GetDailyTrend)
	energy.GET("/appliances", energyController.GetApplianceBreakdown)
	energy.POST("/usage", energyController.AddUsage)

	inventory := r.Group("/inventory", middleware.JWTAuthMiddleware())
	inventory.GET("", inventoryController.ListItems)
	inventory.GET("/expiring", inventoryController.GetExpiryNotice)
	inventory.POST("", inventoryController.AddItem)
	inventory.DELETE("/:id", inventoryController.DeleteItem)

	badges := r.Group("/badges", middleware.JWTAuthMiddleware())
	badges.GET("", badgeController.ListBadges)

	alerts := r.Group("/alerts", middleware.JWTAuthMiddleware())
	alerts.GET("", alertController.ListAlerts)
	alerts.PATCH("/:id/read", alertController.MarkRead)

	activity := r.Group("/activity", middleware.JWTAuthMiddleware())
	activity.GET("/trips", activityController.ListTrips)
	activity.POST("/trips", activityController.AddTrip)
	activity.GET("/meals", activityController.ListMeals)
	activity.POST("/meals", activityController.AddMeal)
	activity.GET("/waste", activityController.ListWasteActions)
	activity.POST("/waste", activityController.AddWasteAction)

	r.GET("/shop/products", catalogController.ListShopProducts)
	r.GET("/community/groups", catalogController.ListCommunityGroups)
	r.GET("/community/challenges", catalogController.ListChallenges)
	r.GET("/community/challenges/mine", middleware.JWTAuthMiddleware(), catalogController.ListUserChallenges)

	r.GET("/leaderboard", leaderboardController.GetStandings)
}
