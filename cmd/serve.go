package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/amigotrunfo/trunfo/backend/handlers"
	"github.com/amigotrunfo/trunfo/trunfo/config"
	"github.com/amigotrunfo/trunfo/trunfo/logger"
)

var initSchema bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the card game HTTP API",
	RunE: logged(func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := setupEngine(ctx)
		if err != nil {
			logger.LogError("Failed to start engine", err)
			return err
		}
		defer e.Close()

		if initSchema {
			if err := e.DB.InitializeSchema(ctx); err != nil {
				slog.Error("Failed to initialize database schema", slog.String("type", "db"), slog.Any("error", err))
				return err
			}
		}

		webApp := &handlers.WebApp{
			DB:         e.DB,
			Packs:      e.Packs,
			Battles:    e.Battles,
			Onboarding: e.Onboarding,
			Profiles:   e.Store,
			Levels:     e.Levels,
			Version:    Version,
		}
		app := handlers.NewApp(ctx, webApp, handlers.AppConfig{
			CORSOrigins:  e.Cfg.HTTP.CORSOrigins,
			ReadTimeout:  e.Cfg.HTTP.ReadTimeout.Duration,
			WriteTimeout: e.Cfg.HTTP.WriteTimeout.Duration,
		})

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			slog.Info("HTTP server listening",
				slog.String("type", "http"),
				slog.String("addr", e.Cfg.HTTP.Addr))
			return app.Listen(e.Cfg.HTTP.Addr)
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.LogSystem("Shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownGracePeriod)
			defer cancel()
			return app.ShutdownWithContext(shutdownCtx)
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			logger.LogError("Server stopped with error", err)
			return err
		}
		logger.LogSystem("Server stopped")
		return nil
	}),
}

func init() {
	serveCmd.Flags().BoolVar(&initSchema, "init-schema", true, "create or upgrade the schema on startup")
	RootCmd.AddCommand(serveCmd)
}
