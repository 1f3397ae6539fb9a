package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fxctl",
		Short:         "FX dashboard rate tools",
		Version:       "v1.0.0",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")

	rootCmd.AddCommand(newRefreshCmd(), newTableCmd())
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
