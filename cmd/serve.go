package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wichai/compass/internal/auth"
	"github.com/wichai/compass/internal/config"
	"github.com/wichai/compass/internal/server"
	"github.com/wichai/compass/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

		var st *store.Store
		if cfg.DatabaseURL != "" {
			st, err = store.Open(cfg.DatabaseURL)
		} else {
			st, err = openStore(cmd)
		}
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		authManager := auth.NewManager(cfg.SessionSecret, cfg.SessionTTL)
		srv, err := server.New(st.Submissions(), st.Admins(), authManager, logger)
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}

		httpServer := &http.Server{
			Addr:              cfg.Listen,
			Handler:           srv.Routes(),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       time.Minute,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("listen", cfg.Listen).Msg("server started")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			logger.Info().Str("signal", sig.String()).Msg("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	},
}
