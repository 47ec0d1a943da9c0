// Package main is the entry point for the SmartFinance command line and API server.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/smartfinance/config"
	"github.com/finance-tracker/smartfinance/internal/commands"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	// Logs go to stderr, stdout carries command output
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := commands.NewRootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
