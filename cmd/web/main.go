package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Bhautik-2004/FMS-sub001/pkg/server"
	"github.com/Bhautik-2004/FMS-sub001/pkg/services/config"
	"github.com/Bhautik-2004/FMS-sub001/pkg/services/export"
	"github.com/Bhautik-2004/FMS-sub001/pkg/store/sqlite"
	"github.com/Bhautik-2004/FMS-sub001/pkg/store/sqlite/history"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the financial report server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (default is ./config.yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{
		DbPath: settings.DbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}

	historyStore, err := history.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create history store: %w", err)
	}
	exportSvc := export.NewService(historyStore)

	logger.Info().Msgf("History database at `%s`.", settings.DbPath)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            settings.Addr(),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Exports:         exportSvc,
			DefaultCurrency: settings.DefaultCurrency,
			HistoryLimit:    settings.HistoryLimit,
		},
	})

	return api.Start()
}
