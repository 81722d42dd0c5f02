package main

import (
	"log"
	"os"

	"portfolioledger/internal/handlers"
	"portfolioledger/internal/ledger"
	"portfolioledger/internal/routes"
	"portfolioledger/pkg/config"
)

func main() {
	// Initialize database
	config.InitDB()

	// Versioned SQL migrations (optional, AutoMigrate covers development)
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		config.ExecuteMigrations()
	}

	// Initialize RabbitMQ (optional, events are still persisted without it)
	var ledgerOpts []ledger.Option
	if os.Getenv("RABBITMQ_HOST") != "" {
		config.InitRabbitMQ()
		defer func() {
			if config.RabbitMQ != nil {
				config.RabbitMQ.Close()
			}
		}()

		publisher, err := config.NewPublisher()
		if err != nil {
			log.Fatal("Failed to create event publisher:", err)
		}
		defer publisher.Close()
		ledgerOpts = append(ledgerOpts, ledger.WithEventPublisher(publisher))
		log.Println("RabbitMQ initialized successfully")
	} else {
		log.Println("RabbitMQ not configured, skipping event fan-out")
	}

	// Wire the accounting core
	core := ledger.New(config.DB, ledgerOpts...)
	if err := core.EnsurePlatformConfig(os.Getenv("OPERATOR_ADDRESS")); err != nil {
		log.Fatal("Failed to initialize platform config:", err)
	}
	handlers.Init(core)

	// Set up router
	r := routes.SetupRouter()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
