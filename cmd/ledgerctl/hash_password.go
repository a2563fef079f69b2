package main

import (
	"escritorio_app_go/services"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Read a password without echo and print its digest",
	Long:  `Prints the SHA-256 digest used in the user table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return fail("failed to read password: %w", err)
		}
		if len(passwordBytes) == 0 {
			return fail("password is required")
		}

		fmt.Fprintln(cmd.OutOrStdout(), services.HashSenha(string(passwordBytes)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
