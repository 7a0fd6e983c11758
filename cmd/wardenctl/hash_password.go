package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"warden/internal/domain/validation"
	"warden/internal/errors"
	"warden/internal/infra/auth"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// NewHashPasswordCmd creates the hash-password subcommand.
func NewHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Read a password and print its bcrypt hash",
		Long: `Read a password from the terminal without echo (or from stdin when piped)
and print a bcrypt hash suitable for seeding the accounts table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}

			if err := validation.ValidatePassword(password); err != nil {
				return errors.Wrap(err, "password rejected")
			}

			hash, err := auth.NewBcryptHasherWithCost(cost).Hash(password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

			return errors.WithStack(err)
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")

	return cmd
}

// readPassword prompts without echo on a terminal and reads one line otherwise.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		cmd.PrintErr("Password: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		cmd.PrintErrln()
		if err != nil {
			return "", errors.Wrap(err, "failed to read password")
		}

		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read password")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
