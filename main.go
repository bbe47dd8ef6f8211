package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio-site/api"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/services"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().Str("DB_TYPE", settings.DBType).Msg("Connecting to Supabase database...")
	db, err := database.Open(settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	currentDB := database.New(db)

	if settings.AutoMigrate {
		log.Info().Msg("Migrating tables...")
		if err := currentDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Error migrating tables")
		}
	}

	// If generating models, run generation and exit
	if settings.GenerateModels {
		log.Info().Msg("Generating models and query helpers...")
		models.GenerateModels(db, "./query")
		return
	}

	// If generating column mismatch report, run report and exit
	if settings.GenerateColumnReport {
		log.Info().Msg("Generating column mismatch report...")
		reports, err := models.ColumnMismatchReport(db)
		if err != nil {
			log.Fatal().Err(err).Msg("Error generating column mismatch report")
		}
		models.WriteColumnMismatchReport(os.Stdout, reports)
		return
	}

	errChannel := make(chan error, 2)

	notifier := services.NewContactNotifier(settings.ResendAPIKey, settings.ResendFromEmail, settings.ContactNotifyEmail)
	server, err := api.NewServer(currentDB, settings, api.WithNotifier(notifier))
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
