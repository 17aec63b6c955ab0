package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"os-simulator/api"
	"os-simulator/config"
	"os-simulator/internal/logging"
)

func main() {
	cfg := config.GetSchedulerConfig()

	logger, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		log.Fatalln(err)
	}
	defer logging.Install(logger)()

	app := fiber.New()
	group := app.Group("/api")

	v1 := group.Group("/v1")
	{
		api.Register(v1, api.NewSchedulerHandlerImpl(cfg))
	}

	zap.L().Info("listening", zap.Int("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
