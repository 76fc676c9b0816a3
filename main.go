package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/LESLIE-RG/ProjetTestParam-trique/adapters/bundle"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/config"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/session"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/testkit"
	"github.com/LESLIE-RG/ProjetTestParam-trique/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	logger.Info("Configuration loaded (port %s, bundle %s)",
		appConfig.Server.Port, appConfig.Model.BundleFile)

	// Demo mode writes a synthetic model bundle when none exists yet, so
	// the prediction screen is usable out of the box.
	if appConfig.Demo.Enabled {
		if _, err := os.Stat(appConfig.Model.BundleFile); os.IsNotExist(err) {
			logger.Info("Demo mode: writing sample model bundle to %s", appConfig.Model.BundleFile)
			if err := testkit.WriteBundleFile(appConfig.Model.BundleFile); err != nil {
				log.Fatalf("Failed to write demo model bundle: %v", err)
			}
		}
	}

	// A missing bundle is tolerated: the prediction screen explains how to
	// generate one. A corrupt bundle is a deployment error and fatal.
	modelBundle, err := bundle.Load(appConfig.Model.BundleFile)
	if err != nil {
		log.Fatalf("Failed to load model bundle: %v", err)
	}
	if modelBundle.Loaded {
		logger.Info("Model bundle loaded with %d features", len(modelBundle.Features))
	} else {
		logger.Warn("Model bundle %s not found, prediction screen disabled", appConfig.Model.BundleFile)
	}

	sessions := session.NewManager(appConfig.Server.SessionTTL)
	stop := make(chan struct{})
	defer close(stop)
	sessions.StartSweeper(appConfig.Server.SessionTTL/4, stop)

	app, err := ui.NewApp(appConfig, sessions, modelBundle)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if appConfig.Demo.Enabled {
		table, err := testkit.Generate(testkit.GeneratorConfig{Rows: appConfig.Demo.Rows, Seed: 42})
		if err != nil {
			log.Fatalf("Failed to generate demo dataset: %v", err)
		}
		logger.Info("Demo mode: sessions start with %s (%d rows)", table.Name, table.RowCount())
		app.EnableDemo(table)
	}

	log.Printf("Dashboard ready on http://localhost:%s", appConfig.Server.Port)
	if err := app.Start(); err != nil {
		log.Fatal("Server failed:", err)
	}
}
