package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/repository"
)

type listUsersConfig struct {
	role       string
	activeOnly bool
	limit      int
}

// NewListUsersCmd creates the list-users subcommand.
func NewListUsersCmd() *cobra.Command {
	cfg := &listUsersConfig{}

	cmd := &cobra.Command{
		Use:   "list-users",
		Short: "List registered accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListUsers(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.role, "role", "", "filter by role (ADMINISTRADOR, OPERATIVO, SEGUIMIENTO, INVITADO)")
	cmd.Flags().BoolVar(&cfg.activeOnly, "activos", false, "only list active accounts")
	cmd.Flags().IntVar(&cfg.limit, "limit", 100, "maximum accounts to list")

	return cmd
}

func runListUsers(cmd *cobra.Command, cfg *listUsersConfig) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), defaultCommandTimeout)
	defer cancel()

	users, pool, err := openUserRepo(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	filter := repository.UserFilter{
		ActiveOnly: cfg.activeOnly,
		Limit:      cfg.limit,
	}
	if cfg.role != "" {
		role, err := domain.ParseRole(cfg.role)
		if err != nil {
			return err
		}
		filter.Role = role
	}

	accounts, err := users.List(ctx, filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tEMAIL\tROLE\tACTIVE\tLAST ACCESS")
	for _, u := range accounts {
		last := "-"
		if u.LastAccessAt != nil {
			last = u.LastAccessAt.Format("2006-01-02 15:04")
		}
		active := "no"
		if u.Active {
			active = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.Role, active, last)
	}
	return nil
}
