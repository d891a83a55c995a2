package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/ncobase/notes/config"
	"github.com/ncobase/notes/data"
	"github.com/ncobase/notes/data/repository"
	"github.com/ncobase/notes/data/schema"
	"github.com/ncobase/notes/logging/logger"
	"github.com/ncobase/notes/structs"

	_ "github.com/ncobase/notes/data/mysql"
	_ "github.com/ncobase/notes/data/postgres"
	_ "github.com/ncobase/notes/data/sqlite"
)

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	var (
		configFile string
		count      int
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample notes",
		Long: `Populate the database with sample notes spread over distinct
creation times, so list pages exercise the full cursor walk. Seeding is
skipped when the database already holds notes, unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), configFile, count, force)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	cmd.Flags().IntVarP(&count, "count", "n", 50, "number of notes to create")
	cmd.Flags().BoolVar(&force, "force", false, "seed even when notes already exist")
	return cmd
}

func runSeed(ctx context.Context, configFile string, count int, force bool) error {
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer cleanup()
	log := logger.StdLogger()

	d, dataCleanup, err := data.New(ctx, cfg.Data)
	if err != nil {
		return fmt.Errorf("failed to connect data layer: %w", err)
	}
	defer dataCleanup()

	if err := schema.Apply(ctx, d.DB(), d.DriverName()); err != nil {
		return err
	}

	repo := repository.NewNoteRepository(d, log)
	existing, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if existing > 0 && !force {
		fmt.Printf("database already holds %d notes, skipping seed (use --force to override)\n", existing)
		return nil
	}

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < count; i++ {
		title := fmt.Sprintf("Sample note %d", i+1)
		ts := base.Add(-time.Duration(count-i) * time.Minute)
		n := &structs.Note{
			ID:        uuid.New().String(),
			Title:     title,
			Content:   fmt.Sprintf("Seeded content for note %d.", i+1),
			Slug:      slug.Make(title),
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		if _, err := repo.Create(ctx, n); err != nil {
			return fmt.Errorf("failed to seed note %d: %w", i+1, err)
		}
	}

	fmt.Printf("seeded %d notes\n", count)
	return nil
}
