package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/swapreport/internal/dataset"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "거래 로그 정리 및 블록 순 정렬",
	Long: `거래 로그를 제자리에서 정리합니다.

- 공백 제거, 빈 줄 삭제
- 중복 행 제거
- blockNumber 오름차순 안정 정렬

Example:
  go run ./cmd/swapreport clean --file buy.csv --file sell.csv`,
	RunE: runClean,
}

var cleanFiles []string

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringArrayVar(&cleanFiles, "file", nil, "거래 로그 CSV (반복 가능, 필수)")
	_ = cleanCmd.MarkFlagRequired("file")
}

func runClean(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for i, f := range cleanFiles {
		n, err := dataset.CleanSort(f)
		if err != nil {
			return fmt.Errorf("clean %s: %w", f, err)
		}
		PrintProgress(out, "Clean", fmt.Sprintf("%s: %d rows", f, n), i+1, len(cleanFiles))
	}

	PrintSuccess(out, fmt.Sprintf("Cleaned %d file(s)", len(cleanFiles)))
	return nil
}
