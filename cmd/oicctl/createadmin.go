package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/domain"
	userUC "github.com/oicpanel/backend/usecase/user"
)

type createAdminConfig struct {
	email    string
	password string
}

// NewCreateAdminCmd creates the create-admin subcommand.
func NewCreateAdminCmd() *cobra.Command {
	cfg := &createAdminConfig{}

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long: `Creates an administrator account with the given credentials.
The command is idempotent: if the email is already registered it reports
the fact and exits successfully.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&cfg.password, "password", "", "account password (required)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func runCreateAdmin(cmd *cobra.Command, cfg *createAdminConfig) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), defaultCommandTimeout)
	defer cancel()

	users, pool, err := openUserRepo(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := userUC.New(users, zap.NewNop())
	user, err := uc.Create(ctx, cfg.email, cfg.password, domain.RoleAdministrador)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			cmd.Printf("account %s already exists, skipping\n", cfg.email)
			return nil
		}
		return err
	}

	cmd.Printf("created administrator %s (%s)\n", user.Email, user.ID)
	return nil
}
