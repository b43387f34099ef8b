package cmd

import (
	"github.com/spf13/cobra"

	"InvestSim/internal/report"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Mostra as taxas Selic, CDI e poupança",
	Long: `Consulta a Selic no Banco Central. Se a consulta falhar usa o último
valor armazenado e, sem ele, a taxa fixa de contingência da configuração.`,
	RunE: runRates,
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}

func runRates(cmd *cobra.Command, args []string) error {
	col, store := openCollector(cfg)
	defer store.Close()
	rates := col.Resolve(cmd.Context())
	return printTables(cmd.OutOrStdout(), "Taxas de Referência", report.RatesTable(rates))
}
