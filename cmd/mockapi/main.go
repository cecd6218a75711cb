package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/helixcrm/console/internal/crmapi"
	"github.com/helixcrm/console/internal/mockapi"
	"github.com/helixcrm/console/pkg/config"
	"github.com/helixcrm/console/pkg/logger"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "mockapi"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "mockapi",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	srv, err := mockapi.NewServer(cfg.MockAPI, cfg.Password, logg, devSeedAccounts())
	if err != nil {
		logg.Error(context.Background(), "failed to build mock api", err)
		os.Exit(1)
	}

	addr := ":" + cfg.MockAPI.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting mock crm api")

	server := &http.Server{
		Addr:    addr,
		Handler: srv.Handler(),
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "mock api server exited", err)
		os.Exit(1)
	}
}

// devSeedAccounts are the credentials the console's demo session signs in
// with. Development only; the real backend owns real accounts.
func devSeedAccounts() []mockapi.SeedAccount {
	return []mockapi.SeedAccount{
		{
			User: crmapi.User{
				ID:              1,
				FirstName:       "Dana",
				LastName:        "Reyes",
				Email:           "dana@example.com",
				Position:        "Operations Lead",
				Role:            "admin",
				TimeZone:        "America/Mexico_City",
				PasswordChanged: true,
			},
			Password: "Str0ng!pass",
		},
		{
			User: crmapi.User{
				ID:        2,
				FirstName: "Luis",
				LastName:  "Ortega",
				Email:     "luis@example.com",
				Position:  "Account Manager",
				Role:      "staff",
			},
			Password: "Temp0rary!",
		},
	}
}
