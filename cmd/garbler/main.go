package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "garbler",
	Short: "Garbler - entity-preserving text corruption for NER training data",
	Long: `Garbler generates synthetic Chilean PII sentences, corrupts them with
OCR-style noise at controlled intensity, and keeps the entity
annotations aligned with the corrupted text.

Use garbler to build training datasets, corrupt single texts, or
inspect the tolerance profiles that protect each entity type.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(corruptCmd)
	rootCmd.AddCommand(profilesCmd)
}

// newLogger builds the batch logger: text handler on stderr, level from
// GARBLER_LOG_LEVEL (debug, info, warn, error; default info).
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("GARBLER_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
