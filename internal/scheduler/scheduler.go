package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"InvestSim/internal/collector"
	"InvestSim/internal/model"
	"InvestSim/internal/notifier"
	"InvestSim/internal/simulator"
	"InvestSim/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Sender delivers a formatted message, retrying on failure.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// ReportSettings are the default comparison parameters.
type ReportSettings struct {
	InitialAmount       float64
	MonthlyContribution float64
	HorizonMonths       int
	Objective           string
	CDBPercent          float64
	LCIPercent          float64
}

// Scheduler manages all cron tasks and answers bot commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  Sender
	Settings  ReportSettings
	Ctx       context.Context

	router *notifier.Router

	mu    sync.Mutex
	rates *model.BenchmarkRates
}

// MaxChatHorizonMonths bounds /compare so a chat message cannot ask for
// an arbitrarily long simulation.
const MaxChatHorizonMonths = 1200

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, sender Sender, settings ReportSettings) *Scheduler {
	s := &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  sender,
		Settings:  settings,
		Ctx:       ctx,
	}
	s.router = s.newRouter()
	return s
}

// RegisterAll registers the rate refresh and the comparison report tasks.
func (s *Scheduler) RegisterAll(refreshCron, reportCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunReportNow refreshes the rates and sends the report immediately.
func (s *Scheduler) RunReportNow() {
	s.refreshTask()
	s.reportTask()
}

// Rates returns the cached rates, resolving them on first use.
func (s *Scheduler) Rates() model.BenchmarkRates {
	s.mu.Lock()
	cached := s.rates
	s.mu.Unlock()
	if cached != nil {
		return *cached
	}
	return s.refresh()
}

func (s *Scheduler) refresh() model.BenchmarkRates {
	rates := s.Collector.Resolve(s.Ctx)
	s.mu.Lock()
	s.rates = &rates
	s.mu.Unlock()
	return rates
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] refreshing benchmark rates")
	prev := s.cached()
	rates := s.refresh()
	log.Printf("[INFO] selic %.4f (%s)", rates.Selic, rates.Source)

	if prev != nil && prev.Selic != rates.Selic && rates.Source == model.SourceRemote {
		s.trySend(fmt.Sprintf("🔔 <b>Selic alterada</b>\n\nDe %.2f%% para %.2f%% a.a.\n\n%s",
			prev.Selic*100, rates.Selic*100, notifier.FormatRates(rates)))
	}
}

func (s *Scheduler) cached() *model.BenchmarkRates {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rates == nil {
		return nil
	}
	r := *s.rates
	return &r
}

func (s *Scheduler) reportTask() {
	log.Println("[INFO] running comparison report")
	msg, err := s.comparisonMessage(s.Settings.HorizonMonths, s.Settings.InitialAmount, s.Settings.MonthlyContribution)
	if err != nil {
		log.Printf("[ERROR] comparison report: %v", err)
		s.trySend(fmt.Sprintf("❌ Falha ao gerar o comparativo: %v", err))
		return
	}
	s.trySend(msg)
}

func (s *Scheduler) comparisonMessage(horizon int, initial, monthly float64) (string, error) {
	rates := s.Rates()
	params := model.SimulationParameters{
		InitialAmount: initial,
		Contribution:  strategy.Fixed{Amount: monthly},
		HorizonMonths: horizon,
	}
	cmp, err := simulator.Compare(params, collector.DefaultScenarios(rates, s.Settings.CDBPercent, s.Settings.LCIPercent))
	if err != nil {
		return "", err
	}
	return notifier.FormatComparison(cmp, s.Settings.Objective, horizon), nil
}

// HandleCommand processes a chat message and returns a reply.
func (s *Scheduler) HandleCommand(text string) string {
	return s.router.Dispatch(text)
}

func (s *Scheduler) newRouter() *notifier.Router {
	r := notifier.NewRouter()
	r.Handle(func(notifier.Command) string {
		return notifier.FormatRates(s.Rates())
	}, "rates", "taxas")
	r.Handle(s.compareCommand, "compare", "comparar")
	r.Handle(func(notifier.Command) string {
		return notifier.FormatHelp()
	}, "help", "ajuda", "start")
	return r
}

func (s *Scheduler) compareCommand(cmd notifier.Command) string {
	horizon, initial, monthly, err := s.compareArgs(cmd.Args)
	if err != nil {
		return "❌ " + err.Error() + "\n\n" + notifier.FormatHelp()
	}
	msg, err := s.comparisonMessage(horizon, initial, monthly)
	if err != nil {
		return "❌ " + err.Error()
	}
	return msg
}

// compareArgs reads optional "months initial monthly" arguments, falling
// back to the configured defaults for any that are missing.
func (s *Scheduler) compareArgs(args []string) (int, float64, float64, error) {
	horizon := s.Settings.HorizonMonths
	initial := s.Settings.InitialAmount
	monthly := s.Settings.MonthlyContribution

	if len(args) > 3 {
		return 0, 0, 0, fmt.Errorf("too many arguments")
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid months %q", args[0])
		}
		if n > MaxChatHorizonMonths {
			return 0, 0, 0, fmt.Errorf("horizon %d exceeds the %d-month limit", n, MaxChatHorizonMonths)
		}
		horizon = n
	}
	if len(args) > 1 {
		v, err := parseAmount(args[1])
		if err != nil {
			return 0, 0, 0, err
		}
		initial = v
	}
	if len(args) > 2 {
		v, err := parseAmount(args[2])
		if err != nil {
			return 0, 0, 0, err
		}
		monthly = v
	}
	return horizon, initial, monthly, nil
}

// parseAmount accepts a decimal comma as well as a dot.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
