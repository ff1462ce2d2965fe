package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"ecotrack/internal/services"
	mem "ecotrack/pkg/memcache"
)

var Module = fx.Provide(
	provideMailService, provideResetTokens)

func provideMailService() (services.IMailService, error) {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "EcoTrack",
		UseSSL:     os.Getenv("SMTP_USE_SSL") == "true",
		AppName:    "EcoTrack",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	})
}

func provideResetTokens() mem.ResetTokenStore {
	return mem.NewResetTokens()
}
