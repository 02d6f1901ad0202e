package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/swapreport/internal/export"
	"github.com/wonny/swapreport/internal/jobconfig"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "YAML 잡 파일로 여러 리포트 실행",
	Long: `YAML 잡 파일에 정의된 리포트를 순서대로 실행합니다.
첫 번째 실패에서 중단합니다.

jobs.yaml:
  meta:
    name: polygon-weekly
    graphs_dir: graphs      # 선택, REPORT_GRAPHS_DIR 대체
    clean_input: true       # 선택, REPORT_CLEAN_INPUT 대체
    xlsx: weekly.xlsx       # 선택
  reports:
    - kind: single
      file: data/weth-usdc.csv
      target_ratio: 1.002
    - kind: sub1
      buy_file: data/buy.csv
      sell_file: data/sell.csv
      buy_ratio: 1.001
      sell_ratio: 1.003

Example:
  go run ./cmd/swapreport batch --jobs jobs.yaml
  go run ./cmd/swapreport batch --jobs jobs.yaml --xlsx weekly.xlsx`,
	RunE: runBatch,
}

var (
	batchJobsFile string
	batchXLSX     string
)

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchJobsFile, "jobs", "", "잡 YAML 파일 (필수)")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "요약 XLSX 파일 (meta.xlsx 대체)")
	_ = batchCmd.MarkFlagRequired("jobs")
}

func runBatch(cmd *cobra.Command, args []string) error {
	start := time.Now()
	out := cmd.OutOrStdout()

	jobs, _, err := jobconfig.Load(batchJobsFile)
	if err != nil {
		return fmt.Errorf("load jobs: %w", err)
	}
	hash, err := jobconfig.Hash(jobs)
	if err != nil {
		return fmt.Errorf("hash jobs: %w", err)
	}

	rt, err := initRuntime(&jobs.Meta)
	if err != nil {
		return err
	}

	PrintJobHeader(out, JobMetadata{
		JobType:    "Batch",
		Name:       jobs.Meta.Name,
		ConfigHash: hash,
		GraphsDir:  rt.renderer.OutputDir(),
		Jobs:       len(jobs.Reports),
	})

	for _, w := range jobconfig.Warn(jobs) {
		PrintWarning(out, fmt.Sprintf("[%s] %s", w.Code, w.Message))
	}

	wb := export.NewWorkbook()
	total := len(jobs.Reports)

	for i, job := range jobs.Reports {
		PrintProgress(out, "Batch", job.Label(), i+1, total)

		switch job.Kind {
		case jobconfig.KindSingle:
			summary, err := rt.service.GenerateReportData(cmd.Context(), job.File, job.TargetRatio)
			if err != nil {
				return fmt.Errorf("reports[%d] %s: %w", i, job.Label(), err)
			}
			printReportSummary(out, summary)
			wb.AddReport(summary)

		case jobconfig.KindSub1:
			summary, err := rt.service.GenerateSub1ReportData(cmd.Context(),
				job.BuyFile, job.SellFile, job.BuyRatio, job.SellRatio)
			if err != nil {
				return fmt.Errorf("reports[%d] %s: %w", i, job.Label(), err)
			}
			printSub1Summary(out, summary)
			wb.AddSub1(summary)
		}
		PrintSeparator(out)
	}

	// 우선순위: --xlsx > meta.xlsx
	xlsx := batchXLSX
	if xlsx == "" {
		xlsx = jobs.Meta.XLSX
	}
	if xlsx != "" {
		if err := saveWorkbook(rt, wb, xlsx); err != nil {
			return err
		}
	}

	rt.log.WithFields(map[string]interface{}{
		"name":        jobs.Meta.Name,
		"config_hash": hash,
		"reports":     wb.Len(),
	}).Info("Batch completed")

	PrintSuccess(out, fmt.Sprintf("Batch %s completed in %.2fs (%d reports)", jobs.Meta.Name, time.Since(start).Seconds(), wb.Len()))
	return nil
}
