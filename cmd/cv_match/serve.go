package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhle/cv-match/internal/config"
	"github.com/minhle/cv-match/internal/llm"
	"github.com/minhle/cv-match/internal/logger"
	"github.com/minhle/cv-match/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes endpoints for parsing resumes and scoring them against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logger.New(logger.Options{Debug: cfg.Debug, JSON: cfg.LogJSON})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}

	return server.New(cfg, client, log).Start()
}
