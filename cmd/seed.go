package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/onboarding"
)

var (
	seedFile        string
	seedConcurrency int
)

var seedCmd = &cobra.Command{
	Use:   "seed-npcs",
	Short: "Generate NPC cards from a TOML file and add them to the pool",
	RunE: logged(func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return fmt.Errorf("open seed file: %w", err)
		}
		defer f.Close()

		inputs, err := onboarding.LoadNPCs(f)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			return fmt.Errorf("%s has no [[npc]] entries", seedFile)
		}

		ctx := cmd.Context()
		e, err := setupEngine(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		npcs, err := e.Onboarding.GenerateNPCs(ctx, inputs, seedConcurrency)
		if err != nil {
			return err
		}

		n, err := e.Store.InsertNPCs(ctx, npcs)
		if err != nil {
			return fmt.Errorf("insert npcs: %w", err)
		}
		total, err := e.Store.CountNPCs(ctx)
		if err != nil {
			return err
		}

		slog.Info("NPC pool seeded",
			slog.String("type", "cmd"),
			slog.Int("inserted", n),
			slog.Int("pool_size", total))
		color.Green("Inserted %d NPC cards, pool now has %d", n, total)
		return nil
	}),
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "npcs.toml", "seed file with [[npc]] entries")
	seedCmd.Flags().IntVar(&seedConcurrency, "concurrency", config.SeedBatchSize, "parallel generation calls")
	RootCmd.AddCommand(seedCmd)
}
