package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ncobase/notes/config"
	"github.com/ncobase/notes/data"
	"github.com/ncobase/notes/data/schema"
	"github.com/ncobase/notes/handler"
	"github.com/ncobase/notes/logging/logger"
	"github.com/ncobase/notes/service"

	_ "github.com/ncobase/notes/data/mysql"
	_ "github.com/ncobase/notes/data/postgres"
	_ "github.com/ncobase/notes/data/sqlite"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the notes API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}

func runServe(configFile string) error {
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

	ctx := context.Background()
	d, dataCleanup, err := data.New(ctx, cfg.Data)
	if err != nil {
		return fmt.Errorf("failed to connect data layer: %w", err)
	}
	defer dataCleanup()

	if cfg.Data.Database.Migrate {
		if err := schema.Apply(ctx, d.DB(), d.DriverName()); err != nil {
			return err
		}
	}

	// Logger settings follow the config file while the server runs.
	// Connections and routes keep their boot-time configuration.
	cfg.Watch(func(fresh *config.Config) {
		if _, err := logger.New(fresh.Logger); err != nil {
			log.Warn(ctx, "failed to apply reloaded logger config", "error", err)
			return
		}
		log.Info(ctx, "configuration reloaded",
			"level", fresh.Logger.Level, "format", fresh.Logger.Format)
	})

	if cfg.RunMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := service.New(d, cfg.Paging.Secret, log)
	h := handler.NewHandler(svc, d, log)

	router := gin.New()
	router.Use(gin.Recovery())
	h.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info(ctx, "starting server", "app", cfg.AppName, "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info(ctx, "server stopped")
	return nil
}
