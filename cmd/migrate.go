package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: logged(func(cmd *cobra.Command, args []string) error {
		e, err := setupEngine(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		start := time.Now()
		if err := e.DB.InitializeSchema(cmd.Context()); err != nil {
			return err
		}

		slog.Info("Schema initialized",
			slog.String("type", "cmd"),
			slog.Duration("took", time.Since(start)))
		return nil
	}),
}

func init() {
	RootCmd.AddCommand(migrateCMD)
}
