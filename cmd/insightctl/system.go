package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuamatosdev/insight-sub001/internal/database"
	authmw "github.com/joshuamatosdev/insight-sub001/internal/http/middleware"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Short:   "Apply pending database migrations",
		GroupID: "system",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(a.cfg.ConnectionString())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}

			version, dirty, err := database.Version(db)
			if err != nil {
				return err
			}

			state := "clean"
			if dirty {
				state = "dirty"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema at version %d (%s)\n", version, state)

			return nil
		},
	}
}

func newTokenCmd(a *app) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Sign an API bearer token with AUTH_SECRET",
		GroupID: "system",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.Secret == "" {
				return errors.New("AUTH_SECRET is not set")
			}

			if subject == "" {
				return errors.New("--subject is required")
			}

			token, err := authmw.NewAuth(a.cfg.Auth.Secret).Issue(subject, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject, e.g. a user or service name")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
