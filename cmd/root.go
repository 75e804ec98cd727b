package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "guestlink",
	Short: "Restaurant guest identity resolution and journey analytics",
	Long:  "Merges ledger, lead form, CRM and reservation exports into unified guest profiles, builds per-guest event journeys, and audits source data quality.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
