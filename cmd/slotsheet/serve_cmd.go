package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nomadcxx/slotsheet/internal/api"
	"github.com/Nomadcxx/slotsheet/internal/logging"
	"github.com/Nomadcxx/slotsheet/internal/ui"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion API server",
		Long: `Start an HTTP server that converts reports on demand.

Endpoints:
  POST /api/v1/convert               report in the body, CSV back
  POST /api/v1/convert?format=json   same, as JSON
  GET  /api/v1/health                health check

Examples:
  slotsheet serve                  # listen on serve.addr (default :8080)
  slotsheet serve --addr :9000
  curl --data-binary @report.txt localhost:8080/api/v1/convert`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = opts.cfg.Serve.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, addr, opts)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on (default: serve.addr from config)")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, addr string, opts *options) error {
	server := api.NewServer(opts.converter(),
		api.WithMaxBodyBytes(opts.cfg.Serve.MaxBodyBytes()),
		api.WithLogger(opts.log),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	ui.SuccessMsg(cmd.ErrOrStderr(), "Serving slotsheet API on %s", addr)
	opts.log.Info("serve", "listening", logging.F("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
