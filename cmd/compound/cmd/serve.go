package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/warp/compound-engine/api"
)

func newServeCmd(o *options) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves the calculator as an HTTP API",
		Long: `Serves the calculator over HTTP.

Routes:
  GET  /api/health
  GET  /api/rates/daily?apy=0.02
  POST /api/maturity
  POST /api/compound
  POST /api/statement`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if port != 0 {
				o.cfg.Server.Port = port
			}
			if err := o.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, o.newServer(), o.logger, o.cfg.Server.ShutdownTimeout.Duration)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides server.port)")
	return cmd
}

func (o *options) newServer() *http.Server {
	handler := api.NewHandler(o.logger, o.threshold(), o.cfg.Savings.Horizon())
	router := api.NewRouter(handler, o.cfg.Server.CORS.AllowedOrigins)

	return &http.Server{
		Addr:         o.cfg.Addr(),
		Handler:      router,
		ReadTimeout:  o.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: o.cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  o.cfg.Server.IdleTimeout.Duration,
	}
}

// runServer serves until ctx is done. On SIGINT/SIGTERM:
//  1. Stop accepting new connections
//  2. Wait for active requests to complete (at most shutdownTimeout)
//  3. Return
func runServer(ctx context.Context, server *http.Server, logger *slog.Logger, shutdownTimeout time.Duration) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
