package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"InvestSim/internal/config"
)

var (
	cfgFile string
	pdfPath string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "investsim",
	Short: "Simulador de investimentos e financiamentos",
	Long: `InvestSim projeta investimentos mês a mês com IR regressivo, compara
produtos atrelados à Selic e monta tabelas de financiamento SAC e Price.

Comandos:
  growth    - simulação detalhada de um investimento
  compare   - comparativo Poupança, CDB, LCI/LCA e Tesouro Selic
  amortize  - financiamento SAC x Price com amortizações extras
  convert   - conversão de taxas e períodos
  rates     - taxas Selic, CDI e poupança
  serve     - relatórios agendados e bot do Telegram`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Arquivo de configuração (default: configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&pdfPath, "pdf", "", "Exporta o resultado para este arquivo PDF")
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "configs/config.yaml"
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return c, nil
}
