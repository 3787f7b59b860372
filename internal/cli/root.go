package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scrng/scoreboard-web/internal/gateway"
)

var (
	cfg    *Config
	client *gateway.Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scorecli",
		Short: "CLI client for the score-tracking API",
		Long: `scorecli is a command-line client for the score-tracking API.

It covers authentication, room management, and player point adjustment,
talking to the same REST surface as the web frontend.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load the saved user unless one was provided via flag/env
			if err := cfg.LoadUser(); err != nil {
				return err
			}

			client = gateway.NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API origin (env: SCOREBOARD_API)")
	rootCmd.PersistentFlags().StringVar(&cfg.UserFile, "user-file", cfg.UserFile, "Saved user file path (env: SCOREBOARD_USER_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newPlayerCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
