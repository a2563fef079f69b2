package main

import (
	"bytes"
	"escritorio_app_go/services"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Store a timestamped backup workbook",
	Long: `Encodes the ledger and stores it. With --out the workbook is written to
that directory; otherwise it goes to the configured backup storage
(BACKUP_DIR, or R2 when the R2_* variables are set).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := openLedger()
		if err != nil {
			return err
		}

		buf, err := services.Encode(ledger.ListAll())
		if err != nil {
			return fail("failed to encode backup: %w", err)
		}

		storage, keyFor := backupStorage(backupOut)
		if storage == nil || !storage.IsConfigured() {
			return fail("backup storage is not configured")
		}

		key := keyFor(time.Now())
		result, err := storage.Put(cmd.Context(), key, bytes.NewReader(buf.Bytes()), services.XLSXContentType, int64(buf.Len()))
		if err != nil {
			return fail("failed to store backup: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backup stored as %s (%d bytes)\n", result.Key, result.FileSize)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.Flags().StringVarP(&backupOut, "out", "o", "", "Directory for the backup file (defaults to the configured storage)")
}
