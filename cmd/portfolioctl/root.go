package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"portfolio/internal/config"
)

var (
	appConfig *config.Config
	logger    *slog.Logger
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Maintenance commands for the portfolio backend",
	Long: `portfolioctl applies database migrations, hashes the admin secret,
lists the bundled static posts and checks CMS documents against the
schemas the API reads.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		appConfig = config.LoadConfig()

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(migrateCmd, hashSecretCmd, staticCmd, cmsLintCmd)
}
