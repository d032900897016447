package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/amigotrunfo/trunfo/trunfo"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
)

var (
	Version = "dev"

	configPath string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "trunfo",
	Short: "Trading card economy server and admin tools",
	Long: `Trunfo runs the card game API and the admin commands used to prepare
a deployment: schema setup, NPC pool seeding and pack grants.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func loadConfig() (*trunfo.Config, error) {
	cfg, err := trunfo.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Log.AddSource)
	return cfg, nil
}

// logged times a RunE and logs its outcome under the command name.
func logged(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		start := time.Now()
		defer func() { logger.LogCommand(cmd.Name(), start, err) }()
		return run(cmd, args)
	}
}

// setupEngine loads config and wires every service against the database.
func setupEngine(ctx context.Context) (*trunfo.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	e := trunfo.New(*cfg, Version)
	if err := e.Setup(ctx); err != nil {
		e.Close()
		return nil, err
	}

	logger.LogSystem("Engine ready",
		slog.String("version", Version),
		slog.String("database", cfg.DB.Database))
	return e, nil
}
