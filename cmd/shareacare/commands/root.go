// Package commands implements the shareacare command line: the HTTP server
// plus operator commands that work directly against the local database.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/share-a-care/internal/admin"
	"github.com/AlexZinkM/share-a-care/internal/config"
	"github.com/AlexZinkM/share-a-care/internal/provider"
	"github.com/AlexZinkM/share-a-care/internal/store"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

var (
	dbPath  string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
	st     *store.SQLiteStore
)

func Execute() error {
	root := &cobra.Command{
		Use:           "shareacare",
		Short:         "Share-a-Care wallet session, admin panel and donation dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			cfg = config.Get()
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}

			level, _ := cfg.SlogLevel()
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			var err error
			st, err = store.NewSQLiteStore(cfg.DatabasePath, logger)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if st != nil {
				return st.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides DATABASE_PATH)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(serveCmd(), publishersCmd(), sessionCmd(), donationsCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// dialProvider connects to the configured wallet provider. A missing or
// unreachable provider yields nil, so the session runs without one.
func dialProvider(ctx context.Context) (wallet.Provider, func()) {
	p, err := provider.Dial(ctx, cfg.ProviderRPCURL, cfg.ProviderPollInterval, logger)
	if err != nil {
		logger.Warn("wallet provider not available", "error", err)
		return nil, func() {}
	}

	chainID, err := p.ChainID(ctx)
	switch {
	case err != nil:
		logger.Warn("could not read provider chain id", "error", err)
	case chainID != cfg.ChainID:
		logger.Warn("provider is on an unexpected chain", "chain_id", chainID, "want", cfg.ChainID)
	}
	return p, p.Close
}

// adminService builds the admin service and makes sure the configured
// admins are present in the store.
func adminService(ctx context.Context) (*admin.Service, error) {
	auth, err := admin.NewAuthorizer(cfg.AdminPrimaryAddress, cfg.AdminSeed())
	if err != nil {
		return nil, err
	}
	svc := admin.NewService(auth, st, logger)
	if err := svc.Bootstrap(ctx, cfg.AdminSeed()); err != nil {
		return nil, fmt.Errorf("bootstrapping admins: %w", err)
	}
	return svc, nil
}
