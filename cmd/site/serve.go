package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the content JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := flags.module(cmd)
			if err != nil {
				return err
			}
			if strings.TrimSpace(addr) != "" {
				module.addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, module)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

// serve runs the API until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, module *moduleResources) error {
	if module.router == nil {
		return errors.New("router not configured")
	}
	engine, err := module.router()
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	listener, err := net.Listen("tcp", module.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", module.addr, err)
	}

	server := &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	if module.logger != nil {
		module.logger.Info("site.http.listening", "addr", listener.Addr().String())
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	if module.logger != nil {
		module.logger.Info("site.http.shutdown")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
