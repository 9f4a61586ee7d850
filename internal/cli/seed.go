package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"weird-animal-quiz/internal/bank"
	"weird-animal-quiz/internal/config"
	"weird-animal-quiz/internal/domain"
)

// NewSeedCmd inserts the built-in question bank into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed Postgres with the built-in weird-animals bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	b := bank.WeirdAnimals()
	if err := domain.ValidateBank(b); err != nil {
		return err
	}
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}

	db := openBun(cfg.Postgres.URL)
	defer db.Close()

	if _, err := db.ExecContext(ctx,
		`INSERT INTO question_banks (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`,
		b.ID, string(data),
	); err != nil {
		return err
	}
	log.Printf("seeded bank %q with %d questions", b.ID, len(b.Questions))
	return nil
}
