package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	userUC "github.com/oicpanel/backend/usecase/user"
)

type setPasswordConfig struct {
	email    string
	password string
}

// NewSetPasswordCmd creates the set-password subcommand.
func NewSetPasswordCmd() *cobra.Command {
	cfg := &setPasswordConfig{}

	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Reset an account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetPassword(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&cfg.password, "password", "", "new password (required)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func runSetPassword(cmd *cobra.Command, cfg *setPasswordConfig) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), defaultCommandTimeout)
	defer cancel()

	users, pool, err := openUserRepo(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	account, err := users.GetByEmail(ctx, cfg.email)
	if err != nil {
		return err
	}

	uc := userUC.New(users, zap.NewNop())
	if err := uc.SetPassword(ctx, account.ID, cfg.password); err != nil {
		return err
	}

	cmd.Printf("password updated for %s\n", account.Email)
	return nil
}
