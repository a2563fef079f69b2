package main

import (
	"errors"
	"escritorio_app_go/services"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	restoreFrom  string
	restoreForce bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore KEY",
	Short: "Replace the data file with a stored backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDataFile()
		if _, err := os.Stat(path); err == nil && !restoreForce {
			return fail("%s already exists, use --force to overwrite it", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fail("failed to check %s: %w", path, err)
		}

		storage, _ := backupStorage(restoreFrom)
		if storage == nil || !storage.IsConfigured() {
			return fail("backup storage is not configured")
		}

		reader, _, err := storage.Get(cmd.Context(), args[0])
		if err != nil {
			return fail("failed to fetch backup: %w", err)
		}
		defer reader.Close()

		records, err := services.DecodeWorkbook(reader)
		if err != nil {
			return fail("backup %s is not a valid ledger: %w", args[0], err)
		}

		if err := services.NewSpreadsheetStore(path).Save(records); err != nil {
			return fail("failed to write %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Restored %d processos to %s\n", len(records), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().StringVar(&restoreFrom, "from", "", "Directory holding the backup (defaults to the configured storage)")
	restoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an existing data file")
}
