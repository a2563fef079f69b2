package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var urgentOnly bool

var prazosCmd = &cobra.Command{
	Use:   "prazos",
	Short: "List computed deadlines, fewest days remaining first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := openLedger()
		if err != nil {
			return err
		}
		prazos := ledger.ComputeDeadlines()
		sort.SliceStable(prazos, func(i, j int) bool {
			return prazos[i].DiasRestantes < prazos[j].DiasRestantes
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NUMERO\tCLIENTE\tADVOGADO\tPRAZO FINAL\tDIAS\tSTATUS")
		for _, p := range prazos {
			if urgentOnly && !p.StatusPrazo.IsUrgent() {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
				p.Numero, p.Cliente, p.Advogado, p.PrazoFinal, p.DiasRestantes, p.StatusPrazo)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(prazosCmd)
	prazosCmd.Flags().BoolVar(&urgentOnly, "urgentes", false, "Only overdue and critical deadlines")
}
