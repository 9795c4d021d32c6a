package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/internal/config"
	pgInfra "github.com/oicpanel/backend/internal/infrastructure/postgres"
	"github.com/oicpanel/backend/repository"
	"github.com/oicpanel/backend/repository/postgres"
)

const defaultCommandTimeout = 30 * time.Second

// NewRootCmd creates the root command for the oicctl CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oicctl",
		Short: "Maintenance CLI for the OIC panel backend",
		Long: `oicctl runs administrative maintenance tasks against the panel
database: bootstrapping the first administrator account, inspecting
accounts and resetting passwords.`,
	}

	cmd.AddCommand(NewCreateAdminCmd())
	cmd.AddCommand(NewListUsersCmd())
	cmd.AddCommand(NewSetPasswordCmd())

	return cmd
}

// openUserRepo connects to Postgres and returns the account repository
// plus a cleanup function for the pool.
func openUserRepo(ctx context.Context) (repository.UserRepository, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	pool, err := pgInfra.NewPool(ctx, cfg.Database, zap.NewNop())
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewUserRepository(pool), pool, nil
}
