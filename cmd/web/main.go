package main

import (
	"fmt"
	"os"
	"time"

	"github.com/de-tools/report-forge/pkg/export/excel"
	"github.com/de-tools/report-forge/pkg/server"
	"github.com/de-tools/report-forge/pkg/services/config"
	"github.com/de-tools/report-forge/pkg/services/source"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	profilePath string
	addr        string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report generation web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&profilePath, "profile", "p", "",
		"Path to the report profile file")
	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

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

	defaults := config.Default()
	if profilePath != "" {
		loaded, err := config.LoadProfile(profilePath)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		defaults = *loaded
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Defaults: defaults,
			Sources: source.NewRegistry(map[string]source.Factory{
				"sample": source.SampleFactory,
				"csv":    source.CSVFactory,
			}),
			Writer: excel.NewWriter(),
		},
	})

	return api.Start()
}
