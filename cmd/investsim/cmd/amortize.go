package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"InvestSim/internal/report"
	"InvestSim/internal/simulator"
	"InvestSim/internal/strategy"
)

var (
	loanAsset       float64
	loanDown        float64
	loanRate        float64
	loanMonths      int
	loanExtra       float64
	loanExtraMonths string
	loanMethod      string
)

var amortizeCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Financiamento SAC x Price com amortizações extras",
	Long: `Monta as tabelas de amortização SAC e Price para o valor financiado
(valor do bem menos a entrada). Amortizações extraordinárias abatem o saldo
devedor nos meses informados.

Exemplo:
  investsim amortize --asset 300000 --down 60000 --rate 10 --months 360 --extra 5000 --extra-months "12,24,36"`,
	RunE: runAmortize,
}

func init() {
	rootCmd.AddCommand(amortizeCmd)
	amortizeCmd.Flags().Float64Var(&loanAsset, "asset", 0, "Valor do imóvel/bem (R$)")
	amortizeCmd.Flags().Float64Var(&loanDown, "down", 0, "Valor de entrada (R$)")
	amortizeCmd.Flags().Float64Var(&loanRate, "rate", 0, "Taxa de juros anual (%)")
	amortizeCmd.Flags().IntVar(&loanMonths, "months", 0, "Prazo em meses")
	amortizeCmd.Flags().Float64Var(&loanExtra, "extra", 0, "Valor da amortização extraordinária (R$)")
	amortizeCmd.Flags().StringVar(&loanExtraMonths, "extra-months", "", "Meses das amortizações, ex: \"12, 24, 36\"")
	amortizeCmd.Flags().StringVar(&loanMethod, "method", "both", "Sistema: sac, price ou both")
	amortizeCmd.MarkFlagRequired("asset")
	amortizeCmd.MarkFlagRequired("rate")
	amortizeCmd.MarkFlagRequired("months")
}

func runAmortize(cmd *cobra.Command, args []string) error {
	extraMonths, err := strategy.ParseMonths(loanExtraMonths)
	if err != nil {
		return err
	}

	cmp, err := simulator.CompareLoan(simulator.Financing{
		AssetValue:         loanAsset,
		DownPayment:        loanDown,
		AnnualRate:         loanRate / 100,
		TermMonths:         loanMonths,
		ExtraPaymentAmount: loanExtra,
		ExtraPaymentMonths: extraMonths,
	})
	if err != nil {
		return err
	}

	tables := []report.Table{report.LoanSummary(cmp)}
	switch strings.ToLower(loanMethod) {
	case "both", "":
		tables = append(tables, report.AmortizationTable(cmp.SAC), report.AmortizationTable(cmp.Price))
	case "sac":
		tables = append(tables, report.AmortizationTable(cmp.SAC))
	case "price":
		tables = append(tables, report.AmortizationTable(cmp.Price))
	default:
		return fmt.Errorf("unknown method %q", loanMethod)
	}
	return printTables(cmd.OutOrStdout(), "Financiamento SAC x Price", tables...)
}
