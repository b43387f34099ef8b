package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"InvestSim/internal/calculator"
	"InvestSim/internal/collector"
	"InvestSim/internal/config"
	"InvestSim/internal/model"
	"InvestSim/internal/recorder"
	"InvestSim/internal/report"
	"InvestSim/internal/strategy"
)

// contributionFlags are shared by growth and compare.
type contributionFlags struct {
	initial   float64
	kind      string
	amount    float64
	variation float64
	custom    string
}

func (c *contributionFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&c.initial, "initial", 0, "Valor inicial (R$)")
	fs.StringVar(&c.kind, "contribution-type", "fixed", "Tipo de aporte: fixed, linear, percentage, custom")
	fs.Float64Var(&c.amount, "contribution", 0, "Aporte mensal ou primeiro aporte (R$)")
	fs.Float64Var(&c.variation, "variation", 0, "Variação: R$ por mês (linear) ou % ao ano (percentage)")
	fs.StringVar(&c.custom, "custom", "", "Aportes extras por mês, ex: \"12:1000, 24:2000\"")
}

func (c *contributionFlags) policy() (model.ContributionPolicy, error) {
	variation := c.variation
	if strings.EqualFold(c.kind, string(model.ContributionPercentage)) {
		variation /= 100
	}
	var overrides map[int]float64
	if strings.EqualFold(c.kind, string(model.ContributionCustom)) {
		parsed, err := strategy.ParseOverridesOrEmpty(c.custom)
		if err != nil {
			// the base amount still applies every month
			log.Printf("[WARN] ignoring custom contributions: %v", err)
		}
		overrides = parsed
	}
	return strategy.NewContribution(c.kind, c.amount, variation, overrides)
}

// periodFlags read a duration as years plus months.
type periodFlags struct {
	years  int
	months int
}

func (p *periodFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&p.years, "years", 0, "Duração em anos")
	fs.IntVar(&p.months, "months", 0, "Meses adicionais")
}

func (p *periodFlags) total(fallback int) int {
	if p.years == 0 && p.months == 0 {
		return fallback
	}
	return calculator.TotalMonths(p.years, p.months)
}

func describePeriod(months int) string {
	return fmt.Sprintf("Período total: %d anos e %d meses, totalizando %d meses ou aproximadamente %d dias.",
		months/12, months%12, months, calculator.ApproxDays(months))
}

// openCollector wires the configured store and the BCB fetcher.
func openCollector(c *config.Config) (*collector.Collector, recorder.Store) {
	store, err := recorder.Open(c.Store.SQLitePath, c.Store.RedisAddr, c.Store.RedisKey)
	if err != nil {
		log.Printf("[WARN] init rate store failed, using noop: %v", err)
		store = recorder.NewNoopStore()
	}
	fetcher := collector.NewBCBFetcher(c.Rates.SourceURL, c.Rates.Proxy)
	return collector.NewCollector(fetcher, store, c.Rates.FallbackSelic), store
}

func printTables(w io.Writer, title string, tables ...report.Table) error {
	fmt.Fprint(w, report.RenderAll(tables...))
	if pdfPath == "" {
		return nil
	}

	f, err := os.Create(pdfPath)
	if err != nil {
		return fmt.Errorf("create pdf: %w", err)
	}
	if err := report.WritePDF(f, title, tables...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close pdf: %w", err)
	}
	fmt.Fprintf(w, "\nPDF salvo em %s\n", pdfPath)
	return nil
}
