package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"InvestSim/internal/model"
	"InvestSim/internal/report"
)

// FormatRates formats the benchmark rates into a Telegram message.
func FormatRates(rates model.BenchmarkRates) string {
	var b strings.Builder

	b.WriteString("📈 <b>Taxas de Referência</b>\n\n")
	b.WriteString(fmt.Sprintf("Selic: %s a.a.\n", report.FormatPercent(rates.Selic)))
	b.WriteString(fmt.Sprintf("CDI: %s a.a.\n", report.FormatPercent(rates.CDI)))
	b.WriteString(fmt.Sprintf("Poupança: %s a.a.\n\n", report.FormatPercent(rates.Savings)))

	if rates.HasDate() {
		b.WriteString(fmt.Sprintf("Última atualização: %s\n", rates.ReferenceDate.Format("02/01/2006")))
	} else {
		b.WriteString("Última atualização: Data não disponível\n")
	}
	if rates.Source == model.SourceFallback {
		b.WriteString("⚠️ Banco Central indisponível, usando taxa de contingência\n")
	}
	return b.String()
}

// FormatComparison formats a scenario comparison with its verdict.
func FormatComparison(cmp model.Comparison, objective string, horizonMonths int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Comparativo de Investimentos</b> | %s\n\n", time.Now().Format("02/01/2006")))
	b.WriteString(fmt.Sprintf("Período: %d meses\n", horizonMonths))
	b.WriteString(fmt.Sprintf("Total investido: %s\n\n", report.FormatBRL(cmp.InvestedCapital)))

	for _, r := range cmp.Results {
		marker := "  "
		if r.Scenario.Name == cmp.Best {
			marker = "🏆"
		}
		b.WriteString(fmt.Sprintf("%s <b>%s</b> (%s a.a.)\n", marker, html.EscapeString(r.Scenario.Name), report.FormatPercent(r.Scenario.AnnualRate)))
		b.WriteString(fmt.Sprintf("   Líquido: %s", report.FormatBRL(r.Result.NetBalance)))
		if r.Result.TaxPaid > 0 {
			b.WriteString(fmt.Sprintf(" | IR: %s", report.FormatBRL(r.Result.TaxPaid)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(html.EscapeString(report.Analysis(cmp, objective)))
	return b.String()
}

// FormatLoan summarizes a SAC vs Price financing comparison.
func FormatLoan(cmp model.LoanComparison) string {
	var b strings.Builder
	b.WriteString("🏠 <b>Financiamento SAC x Price</b>\n\n")
	b.WriteString(fmt.Sprintf("Valor financiado: %s\n", report.FormatBRL(cmp.Principal)))
	b.WriteString(fmt.Sprintf("Taxa: %s a.a. (%s a.m.)\n\n", report.FormatPercent(cmp.AnnualRate), report.FormatPercent(cmp.MonthlyRate)))
	b.WriteString(fmt.Sprintf("SAC: total %s, juros %s\n", report.FormatBRL(cmp.SAC.TotalPayment), report.FormatBRL(cmp.SAC.TotalInterest)))
	b.WriteString(fmt.Sprintf("Price: total %s, juros %s\n", report.FormatBRL(cmp.Price.TotalPayment), report.FormatBRL(cmp.Price.TotalInterest)))
	b.WriteString(fmt.Sprintf("\nDiferença de juros: %s", report.FormatBRL(cmp.InterestDifference())))
	return b.String()
}

// FormatHelp lists the bot commands.
func FormatHelp() string {
	return "🤖 <b>InvestSim</b>\n\n" +
		"/rates - taxas Selic, CDI e poupança\n" +
		"/compare - comparativo com os parâmetros padrão\n" +
		"/compare 24 1000 500 - meses, valor inicial, aporte mensal\n" +
		"/help - esta mensagem"
}
