package main

import (
	"fmt"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/errors"
	"warden/internal/infra/auth"
	"warden/internal/util"

	"github.com/spf13/cobra"
)

// NewIssueTokenCmd creates the issue-token subcommand.
func NewIssueTokenCmd() *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Issue a bearer token signed with the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedRole, ok := entity.ParseRole(role)
			if !ok {
				return domainerrors.ErrInvalidRole
			}
			if err := requireSubject(subject); err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to create token service")
			}

			issued, err := tokens.Issue(subject, parsedRole)
			if err != nil {
				return errors.Wrap(err, "failed to issue token")
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), issued.Token); err != nil {
				return errors.WithStack(err)
			}
			cmd.PrintErrf("expires at %s (%s)\n",
				issued.ExpiresAt.UTC().Format(time.RFC3339),
				util.FormatExpiry(issued.ExpiresAt, time.Now()),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "login the token is issued to")
	cmd.Flags().StringVar(&role, "role", entity.RoleUser.String(), "role claim (USER or ADMIN)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

// NewVerifyTokenCmd creates the verify-token subcommand.
func NewVerifyTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-token <token>",
		Short: "Verify a bearer token and print its claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return errors.Wrap(err, "failed to load config")
			}

			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to create token service")
			}

			claims, err := tokens.Verify(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "subject:   %s\nrole:      %s\nissuedAt:  %s\nexpiresAt: %s (%s)\n",
				claims.Subject,
				claims.Role,
				claims.IssuedAt.UTC().Format(time.RFC3339),
				claims.ExpiresAt.UTC().Format(time.RFC3339),
				util.FormatExpiry(claims.ExpiresAt, time.Now()),
			)

			return errors.WithStack(err)
		},
	}
}

func requireSubject(subject string) error {
	if subject == "" {
		return errors.New("--subject must not be empty")
	}

	return nil
}
