package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"fursan/config"
	"fursan/di"
	"fursan/driver/fursan_db"
	"fursan/rest"
	"fursan/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	ctx := context.Background()
	db, err := fursan_db.InitDBConnection(ctx)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer db.Close()

	container := di.NewApplicationComponents(db, cfg)

	e := echo.New()
	rest.RegisterRoutes(e, container, cfg)

	err = e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
