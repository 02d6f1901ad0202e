package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/swapreport/internal/chart"
	"github.com/wonny/swapreport/internal/jobconfig"
	"github.com/wonny/swapreport/internal/report"
	"github.com/wonny/swapreport/pkg/config"
	"github.com/wonny/swapreport/pkg/logger"
)

var (
	// Global flags
	configFile string
	graphsDir  string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swapreport",
	Short: "Swap trade log profitability reports",
	Long: `swapreport - 스왑 거래 로그 수익성 리포트

거래 로그(CSV)를 목표 비율로 평가하고 블록별 비율 차트(PNG)를 생성합니다.

Usage:
  go run ./cmd/swapreport [command]

Examples:
  go run ./cmd/swapreport report run --file data/weth-usdc.csv --target-ratio 1.002
  go run ./cmd/swapreport report sub1 --buy-file buy.csv --sell-file sell.csv --buy-ratio 1.001 --sell-ratio 1.003
  go run ./cmd/swapreport batch --jobs jobs.yaml --xlsx weekly.xlsx
  go run ./cmd/swapreport clean --file data/weth-usdc.csv`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&graphsDir, "graphs-dir", "", "chart output directory (overrides REPORT_GRAPHS_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// runtime bundles what every report command needs
type runtime struct {
	cfg      *config.Config
	log      *logger.Logger
	renderer *chart.PlotRenderer
	service  *report.Service
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFile(configFile)
	}
	return config.Load()
}

// applyOverrides layers CLI flags and batch meta (nil for single reports) over cfg
// 우선순위: --graphs-dir > batch meta > REPORT_GRAPHS_DIR
func applyOverrides(cfg *config.Config, meta *jobconfig.Meta) {
	if meta != nil {
		if meta.GraphsDir != "" {
			cfg.Report.GraphsDir = meta.GraphsDir
		}
		cfg.Report.CleanInput = meta.CleanInputOr(cfg.Report.CleanInput)
	}
	if graphsDir != "" {
		cfg.Report.GraphsDir = graphsDir
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
}

func initRuntime(meta *jobconfig.Meta) (*runtime, error) {
	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(cfg, meta)

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Wire renderer + service
	renderer := chart.NewPlotRenderer(cfg.Report.GraphsDir)
	svc := report.NewService(renderer, log, report.Options{
		CleanInput:  cfg.Report.CleanInput,
		ChartWidth:  cfg.Report.ChartWidth,
		ChartHeight: cfg.Report.ChartHeight,
	})

	log.WithFields(map[string]interface{}{
		"graphs_dir":  renderer.OutputDir(),
		"clean_input": cfg.Report.CleanInput,
	}).Debug("Runtime initialized")

	return &runtime{cfg: cfg, log: log, renderer: renderer, service: svc}, nil
}
