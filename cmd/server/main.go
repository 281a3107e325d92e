package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configsdatabase"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.Load()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName:      "medical-practice-site",
		Views:        engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	routes.SetupRoutes(app)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	configslog.SLog.Infof("Server listening on port %s (env: %s)", cfg.Port, cfg.AppEnv)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Shutdown signal received, draining connections...")
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}
