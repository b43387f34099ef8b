package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"InvestSim/internal/notifier"
	"InvestSim/internal/scheduler"
)

var serveRunNow bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Relatórios agendados e bot do Telegram",
	Long: `Atualiza a Selic e envia o comparativo padrão ao Telegram nos horários
configurados, e responde aos comandos /rates, /compare e /help.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveRunNow, "run-now", false, "Envia o relatório ao iniciar")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateTelegram(); err != nil {
		return err
	}
	log.Println("[INFO] InvestSim starting...")

	col, store := openCollector(cfg)
	defer store.Close()
	log.Printf("[INFO] rate source: %s", col.Fetcher.Name())

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Rates.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, tn, scheduler.ReportSettings{
		InitialAmount:       cfg.Simulation.InitialAmount,
		MonthlyContribution: cfg.Simulation.MonthlyContribution,
		HorizonMonths:       cfg.Simulation.HorizonMonths,
		Objective:           cfg.Simulation.Objective,
		CDBPercent:          cfg.Rates.CDBPercent,
		LCIPercent:          cfg.Rates.LCIPercent,
	})
	if err := sched.RegisterAll(cfg.Schedule.RefreshCron, cfg.Schedule.ReportCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	if serveRunNow || os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] run-on-start enabled, sending report now")
		go sched.RunReportNow()
	}

	log.Println("[INFO] InvestSim is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	return nil
}
