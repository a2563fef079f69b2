package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var (
	relatorioMes int
	relatorioAno int
)

var relatorioCmd = &cobra.Command{
	Use:   "relatorio",
	Short: "Print the period report as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if relatorioMes < 0 || relatorioMes > 12 {
			return fail("mês inválido: %d", relatorioMes)
		}
		if relatorioAno < 0 {
			return fail("ano inválido: %d", relatorioAno)
		}

		ledger, err := openLedger()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(ledger.Report(relatorioMes, relatorioAno))
	},
}

func init() {
	rootCmd.AddCommand(relatorioCmd)
	relatorioCmd.Flags().IntVar(&relatorioMes, "mes", 0, "Month (1-12), defaults to the current month")
	relatorioCmd.Flags().IntVar(&relatorioAno, "ano", 0, "Year, defaults to the current year")
}
