package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	grantProfile string
	grantCount   int
)

var grantCmd = &cobra.Command{
	Use:   "grant-packs",
	Short: "Add unopened packs to a profile",
	RunE: logged(func(cmd *cobra.Command, args []string) error {
		if grantProfile == "" {
			return errors.New("--profile is required")
		}
		if grantCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", grantCount)
		}

		e, err := setupEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		total, err := e.Store.GrantPacks(cmd.Context(), grantProfile, grantCount)
		if err != nil {
			return fmt.Errorf("grant packs to %s: %w", grantProfile, err)
		}

		color.Green("Profile %s now has %d packs", grantProfile, total)
		return nil
	}),
}

func init() {
	grantCmd.Flags().StringVarP(&grantProfile, "profile", "p", "", "profile id")
	grantCmd.Flags().IntVarP(&grantCount, "count", "n", 1, "number of packs")
	RootCmd.AddCommand(grantCmd)
}
