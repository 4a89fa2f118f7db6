package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikhail/talenthub/internal/config"
	"github.com/mikhail/talenthub/internal/db"
	"github.com/mikhail/talenthub/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load development fixtures",
	Long:  `Validate the embedded fixtures against their JSON Schema and insert the admin account, talent profiles and job postings.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	fixtures, err := seed.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := seed.Apply(ctx, database, passwordConfig, fixtures); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	cmd.Printf("Seeded %d talents and %d jobs\n", len(fixtures.Talents), len(fixtures.Jobs))
	return nil
}
