package main

import (
	"escritorio_app_go/config"
	"escritorio_app_go/services"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var dataFile string

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Operate the case ledger from the command line",
	Long: `ledgerctl reads the same spreadsheet the server uses.

Examples:
  # List deadlines, fewest days remaining first
  ./ledgerctl prazos

  # Monthly report as JSON
  ./ledgerctl relatorio --mes 6 --ano 2025

  # Write a backup workbook to ./backups
  ./ledgerctl backup --out backups

  # Restore a backup over the data file
  ./ledgerctl restore backup_processos_20250620_103000.xlsx --from backups --force`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "Path to the ledger spreadsheet (defaults to DATA_FILE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openLedger loads the ledger named by --data. The file must already exist;
// nothing is ever written to it.
func openLedger() (*services.Ledger, error) {
	path := resolveDataFile()
	ledger, err := services.OpenLedger(services.NewSpreadsheetStore(path))
	if err != nil {
		return nil, fail("%s: %w", path, err)
	}
	return ledger, nil
}

func resolveDataFile() string {
	if dataFile == "" {
		dataFile = config.Load().DataFile
	}
	return dataFile
}

// backupStorage returns the provider for backup commands. With dir set,
// backups are plain files in dir; otherwise the configured storage is used.
func backupStorage(dir string) (services.StorageProvider, func(time.Time) string) {
	if dir != "" {
		return services.NewLocalStorage(dir), services.BackupFilename
	}
	services.InitializeStorage(config.Load())
	return services.Storage, services.BackupKey
}

func fail(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
