package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/share-a-care/internal/address"
	"github.com/AlexZinkM/share-a-care/internal/api"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			prov, closeProvider := dialProvider(ctx)
			defer closeProvider()

			session := wallet.New(st, prov, logger)
			state, err := session.Initialize(ctx)
			if err != nil {
				return fmt.Errorf("initializing wallet session: %w", err)
			}
			defer session.Close()

			svc, err := adminService(ctx)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.ServerAddr(),
				Handler:           api.SetupRouter(session, svc, st),
				ReadHeaderTimeout: 10 * time.Second,
			}

			green := color.New(color.FgGreen)
			green.Print("    ▶ ")
			fmt.Printf("HTTP:     http://%s (swagger at /swagger/)\n", cfg.ServerAddr())
			green.Print("    ▶ ")
			fmt.Printf("Database: %s\n", cfg.DatabasePath)
			green.Print("    ▶ ")
			if state.Connected {
				fmt.Printf("Wallet:   %s\n", address.FormatForDisplay(state.Address))
			} else {
				fmt.Println("Wallet:   not connected")
			}

			if !cfg.Loopback() {
				logger.Warn("listening on a non-loopback address; any client that can reach it can act as the connected wallet", "addr", cfg.ServerAddr())
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("starting server", "addr", srv.Addr, "provider_available", prov != nil)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
