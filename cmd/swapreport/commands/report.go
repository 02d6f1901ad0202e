package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/swapreport/internal/export"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "단일 리포트 생성",
	Long: `거래 로그 하나(또는 buy/sell 한 쌍)로 리포트를 생성합니다.

Example:
  go run ./cmd/swapreport report run --file data/weth-usdc.csv --target-ratio 1.002
  go run ./cmd/swapreport report sub1 --buy-file buy.csv --sell-file sell.csv --buy-ratio 1.001 --sell-ratio 1.003`,
}

var (
	reportRunCmd = &cobra.Command{
		Use:   "run",
		Short: "목표 비율을 넘긴 거래 차트",
		Long: `거래 로그를 목표 비율로 평가하고, 수익 거래의 블록별 비율을 차트로 저장합니다.

Flags:
  --file          거래 로그 CSV (필수)
  --target-ratio  목표 비율 (필수)
  --xlsx          요약 XLSX 파일 (선택)`,
		RunE: runReport,
	}

	reportSub1Cmd = &cobra.Command{
		Use:   "sub1",
		Short: "buy/sell 교대 스케줄 차트",
		Long: `buy 로그와 sell 로그를 각각 평가한 뒤, 블록 순서로 buy → sell 교대 스케줄을 만들고
라운드 트립 수와 기간 수익률을 계산합니다.

Flags:
  --buy-file    buy 거래 로그 CSV (필수)
  --sell-file   sell 거래 로그 CSV (필수)
  --buy-ratio   buy 목표 비율 (필수)
  --sell-ratio  sell 목표 비율 (필수)
  --xlsx        요약 XLSX 파일 (선택)`,
		RunE: runReportSub1,
	}

	// Flags
	reportFile        string
	reportTargetRatio float64
	reportBuyFile     string
	reportSellFile    string
	reportBuyRatio    float64
	reportSellRatio   float64
	reportXLSX        string
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportRunCmd)
	reportCmd.AddCommand(reportSub1Cmd)

	reportRunCmd.Flags().StringVar(&reportFile, "file", "", "거래 로그 CSV (필수)")
	reportRunCmd.Flags().Float64Var(&reportTargetRatio, "target-ratio", 0, "목표 비율 (필수)")
	reportRunCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "요약 XLSX 파일")
	_ = reportRunCmd.MarkFlagRequired("file")
	_ = reportRunCmd.MarkFlagRequired("target-ratio")

	reportSub1Cmd.Flags().StringVar(&reportBuyFile, "buy-file", "", "buy 거래 로그 CSV (필수)")
	reportSub1Cmd.Flags().StringVar(&reportSellFile, "sell-file", "", "sell 거래 로그 CSV (필수)")
	reportSub1Cmd.Flags().Float64Var(&reportBuyRatio, "buy-ratio", 0, "buy 목표 비율 (필수)")
	reportSub1Cmd.Flags().Float64Var(&reportSellRatio, "sell-ratio", 0, "sell 목표 비율 (필수)")
	reportSub1Cmd.Flags().StringVar(&reportXLSX, "xlsx", "", "요약 XLSX 파일")
	for _, name := range []string{"buy-file", "sell-file", "buy-ratio", "sell-ratio"} {
		_ = reportSub1Cmd.MarkFlagRequired(name)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime(nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	PrintJobHeader(out, JobMetadata{
		JobType:   "Report",
		Name:      reportFile,
		GraphsDir: rt.renderer.OutputDir(),
	})

	summary, err := rt.service.GenerateReportData(cmd.Context(), reportFile, reportTargetRatio)
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	printReportSummary(out, summary)

	if reportXLSX != "" {
		wb := export.NewWorkbook()
		wb.AddReport(summary)
		if err := saveWorkbook(rt, wb, reportXLSX); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	PrintSuccess(out, "Report completed")
	return nil
}

func runReportSub1(cmd *cobra.Command, args []string) error {
	rt, err := initRuntime(nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	PrintJobHeader(out, JobMetadata{
		JobType:   "Sub1 Report",
		Name:      reportBuyFile + " / " + reportSellFile,
		GraphsDir: rt.renderer.OutputDir(),
	})

	summary, err := rt.service.GenerateSub1ReportData(cmd.Context(),
		reportBuyFile, reportSellFile, reportBuyRatio, reportSellRatio)
	if err != nil {
		return fmt.Errorf("generate sub1 report: %w", err)
	}
	printSub1Summary(out, summary)

	if reportXLSX != "" {
		wb := export.NewWorkbook()
		wb.AddSub1(summary)
		if err := saveWorkbook(rt, wb, reportXLSX); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	PrintSuccess(out, "Sub1 report completed")
	return nil
}

func saveWorkbook(rt *runtime, wb *export.Workbook, name string) error {
	path := exportPath(rt.cfg.Report.ExportDir, name)
	if err := wb.Save(path); err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	rt.log.WithField("path", path).Info("Workbook saved")
	return nil
}
