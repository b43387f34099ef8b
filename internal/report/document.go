package report

import (
	"fmt"
	"strconv"

	"InvestSim/internal/model"
)

// Table is a titled grid of already formatted cells, rendered either to the
// terminal or to PDF.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Notes   []string
}

// GrowthSummary lists the headline figures of a simulation.
func GrowthSummary(res model.SimulationResult) Table {
	return Table{
		Title:   "Resumo Financeiro",
		Headers: []string{"Total Investido", "Saldo Bruto", "IR Pago", "Saldo Líquido"},
		Rows: [][]string{{
			FormatBRL(res.InvestedCapital),
			FormatBRL(res.GrossBalance),
			FormatBRL(res.TaxPaid),
			FormatBRL(res.NetBalance),
		}},
	}
}

// GrowthTable is the month-by-month ledger of a simulation.
func GrowthTable(res model.SimulationResult) Table {
	t := Table{
		Title:   "Relatório de Análise Mensal",
		Headers: []string{"Mês", "Aporte", "Juros", "Saldo Bruto", "Capital Acumulado"},
		Rows:    make([][]string, 0, len(res.Schedule)),
	}
	for _, r := range res.Schedule {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Month),
			FormatBRL(r.Contribution),
			FormatBRL(r.Interest),
			FormatBRL(r.GrossBalance),
			FormatBRL(r.AccumulatedCapital),
		})
	}
	return t
}

// ComparisonTable puts every scenario side by side.
func ComparisonTable(cmp model.Comparison) Table {
	t := Table{
		Title:   "Resultados Comparativos",
		Headers: []string{"Investimento", "Taxa a.a.", "Saldo Bruto", "IR Pago", "Saldo Líquido"},
		Notes:   []string{"Total Investido: " + FormatBRL(cmp.InvestedCapital)},
	}
	for _, r := range cmp.Results {
		t.Rows = append(t.Rows, []string{
			r.Scenario.Name,
			FormatPercent(r.Scenario.AnnualRate),
			FormatBRL(r.Result.GrossBalance),
			FormatBRL(r.Result.TaxPaid),
			FormatBRL(r.Result.NetBalance),
		})
	}
	return t
}

// Analysis is the plain-language verdict on a comparison.
func Analysis(cmp model.Comparison, objective string) string {
	best, ok := cmp.Lookup(cmp.Best)
	if !ok {
		return ""
	}
	head := fmt.Sprintf("Para o seu objetivo de '%s', o melhor investimento é o %s, com um saldo líquido de %s.",
		objective, cmp.Best, FormatBRL(best.Result.NetBalance))
	if pct, ok := cmp.Advantage(); ok {
		return head + fmt.Sprintf(" Isso representa uma rentabilidade líquida de %.2f%% acima do %s, o investimento de menor rendimento neste cenário.",
			pct, cmp.Worst)
	}
	return head + fmt.Sprintf(" O investimento de menor rendimento foi o %s.", cmp.Worst)
}

// AmortizationTable is the schedule of one method.
func AmortizationTable(res model.AmortizationResult) Table {
	t := Table{
		Title:   "Tabela " + methodLabel(res.Method),
		Headers: []string{"Mês", "Juros", "Amortização", "Extra", "Parcela", "Saldo Devedor"},
		Rows:    make([][]string, 0, len(res.Schedule)),
	}
	for _, r := range res.Schedule {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Month),
			FormatBRL(r.Interest),
			FormatBRL(r.Amortization),
			FormatBRL(r.Extra),
			FormatBRL(r.Payment),
			FormatBRL(r.RemainingBalance),
		})
	}
	if res.PayoffMonth > 0 && res.PayoffMonth < len(res.Schedule) {
		t.Notes = append(t.Notes, fmt.Sprintf("Quitado no mês %d.", res.PayoffMonth))
	}
	if res.Degenerate {
		t.Notes = append(t.Notes, "Taxa zero: a parcela Price é nula e o saldo só cai com amortizações extras.")
	}
	return t
}

// LoanSummary compares total cost of SAC and Price for one financing.
func LoanSummary(cmp model.LoanComparison) Table {
	return Table{
		Title:   "Resumo dos Custos Totais",
		Headers: []string{"Sistema", "Primeira Parcela", "Total Pago", "Juros Totais"},
		Rows: [][]string{
			loanRow(cmp.SAC),
			loanRow(cmp.Price),
		},
		Notes: []string{
			fmt.Sprintf("Valor financiado: %s (taxa %s a.a. / %s a.m.)",
				FormatBRL(cmp.Principal), FormatPercent(cmp.AnnualRate), FormatPercent(cmp.MonthlyRate)),
			"Diferença de juros (Price - SAC): " + FormatBRL(cmp.InterestDifference()),
		},
	}
}

func loanRow(res model.AmortizationResult) []string {
	first := 0.0
	if len(res.Schedule) > 0 {
		first = res.Schedule[0].Payment
	}
	return []string{methodLabel(res.Method), FormatBRL(first), FormatBRL(res.TotalPayment), FormatBRL(res.TotalInterest)}
}

func methodLabel(m model.AmortizationMethod) string {
	if m == model.MethodPrice {
		return "Price"
	}
	return string(m)
}

// RatesTable shows the benchmark rates and where they came from.
func RatesTable(rates model.BenchmarkRates) Table {
	date := "Data não disponível"
	if rates.HasDate() {
		date = rates.ReferenceDate.Format("02/01/2006")
	}
	return Table{
		Title:   "Taxas de Referência",
		Headers: []string{"Indicador", "Taxa a.a."},
		Rows: [][]string{
			{"Selic", FormatPercent(rates.Selic)},
			{"CDI", FormatPercent(rates.CDI)},
			{"Poupança", FormatPercent(rates.Savings)},
		},
		Notes: []string{
			"Última atualização: " + date,
			"Fonte: " + sourceLabel(rates.Source),
		},
	}
}

func sourceLabel(s model.RateSource) string {
	switch s {
	case model.SourceRemote:
		return "Banco Central (SGS 432)"
	case model.SourceStore:
		return "último valor armazenado"
	default:
		return "taxa fixa de contingência"
	}
}
