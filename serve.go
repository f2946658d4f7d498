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

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	transport "github.com/xiaot623/chatshare/internal/transport/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			server := transport.NewServer(a.service)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				addr := fmt.Sprintf(":%d", cfg.HTTPPort)
				log.Info().Str("addr", addr).Msg("HTTP API started")
				if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info().Msg("shutting down chatshare...")

				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("failed to shutdown server gracefully")
					return err
				}
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}
			log.Info().Msg("chatshare stopped")
			return nil
		},
	}
}
