package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"InvestSim/internal/calculator"
	"InvestSim/internal/report"
)

var (
	convertFrom   string
	convertYears  float64
	convertMonths float64
	convertDays   float64
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Conversão de taxas e períodos",
}

var convertRateCmd = &cobra.Command{
	Use:   "rate <percent>",
	Short: "Converte uma taxa anual em mensal ou vice-versa",
	Long: `Converte taxas equivalentes por juros compostos.

Exemplo:
  investsim convert rate 12 --from annual
  investsim convert rate 0.5 --from monthly`,
	Args: cobra.ExactArgs(1),
	RunE: runConvertRate,
}

var convertPeriodCmd = &cobra.Command{
	Use:   "period",
	Short: "Converte anos, meses ou dias nas outras unidades",
	Long: `Informe apenas uma unidade. Anos têm prioridade sobre meses e meses
sobre dias. A conversão de dias usa meses de 30 dias.`,
	RunE: runConvertPeriod,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.AddCommand(convertRateCmd, convertPeriodCmd)
	convertRateCmd.Flags().StringVar(&convertFrom, "from", "annual", "Período da taxa informada: annual ou monthly")
	convertPeriodCmd.Flags().Float64Var(&convertYears, "years", 0, "Anos")
	convertPeriodCmd.Flags().Float64Var(&convertMonths, "months", 0, "Meses")
	convertPeriodCmd.Flags().Float64Var(&convertDays, "days", 0, "Dias")
}

func runConvertRate(cmd *cobra.Command, args []string) error {
	pct, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
	if err != nil {
		return fmt.Errorf("invalid rate %q", args[0])
	}
	rate := pct / 100

	var dir calculator.Direction
	switch strings.ToLower(convertFrom) {
	case "annual", "anual":
		dir = calculator.AnnualToMonthlyDirection
	case "monthly", "mensal":
		dir = calculator.MonthlyToAnnualDirection
	default:
		return fmt.Errorf("unknown rate period %q", convertFrom)
	}
	if rate < -1 {
		return fmt.Errorf("rate must be >= -100%%")
	}

	out := cmd.OutOrStdout()
	converted := calculator.ConvertRate(rate, dir)
	if dir == calculator.AnnualToMonthlyDirection {
		fmt.Fprintf(out, "%s a.a. equivale a %s a.m.\n", report.FormatPercent(rate), formatRate(converted))
	} else {
		fmt.Fprintf(out, "%s a.m. equivale a %s a.a.\n", report.FormatPercent(rate), formatRate(converted))
	}
	return nil
}

// formatRate keeps four decimals, enough to tell small monthly rates apart.
func formatRate(rate float64) string {
	return strings.Replace(strconv.FormatFloat(rate*100, 'f', 4, 64), ".", ",", 1) + "%"
}

func runConvertPeriod(cmd *cobra.Command, args []string) error {
	p := calculator.ConvertPeriod(convertYears, convertMonths, convertDays)
	if p == (calculator.Period{}) {
		return fmt.Errorf("informe --years, --months ou --days com valor positivo")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Anos: %.2f\nMeses: %.2f\nDias: %.2f\n", p.Years, p.Months, p.Days)
	return nil
}
