package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("REPORT_GRAPHS_DIR", filepath.Join(dir, "graphs"))
	t.Setenv("REPORT_EXPORT_DIR", filepath.Join(dir, "reports"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func TestReportRun(t *testing.T) {
	dir := setupEnv(t)
	path := writeFile(t, dir, "weth-usdc.csv",
		"1,2,WETH,18,USDC,18,1,0.5,0.5,0",
		"1,1,WETH,18,USDC,18,1,2,2.0,0",
	)

	out, err := execute(t, "report", "run", "--file", path, "--target-ratio", "1.0", "--xlsx", "single.xlsx")
	require.NoError(t, err)

	assert.Contains(t, out, "weth-usdc (target 1.000000)")
	assert.Contains(t, out, "Cleared      : 1 (50.00%)")
	assert.FileExists(t, filepath.Join(dir, "graphs", "weth-usdc.png"))
	assert.FileExists(t, filepath.Join(dir, "reports", "single.xlsx"))
	reportXLSX = ""

	// cleaned in place: sorted by block
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "1,1,"))
}

func TestReportRun_MissingFile(t *testing.T) {
	dir := setupEnv(t)

	_, err := execute(t, "report", "run", "--file", filepath.Join(dir, "nope.csv"), "--target-ratio", "1.0")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := setupEnv(t)
	writeFile(t, dir, "single.csv", "1,5,A,18,B,18,1,2,2,0")
	writeFile(t, dir, "buy.csv", "1,10,A,18,B,18,1,2,2,0", "1,30,A,18,B,18,1,2,2,0")
	writeFile(t, dir, "sell.csv", "1,20,B,18,A,18,1,2,2,0")
	jobs := writeFile(t, dir, "jobs.yaml",
		"meta:",
		"  name: weekly",
		"  xlsx: out/weekly.xlsx",
		"reports:",
		"  - kind: single",
		"    file: single.csv",
		"    target_ratio: 1.5",
		"  - kind: sub1",
		"    buy_file: buy.csv",
		"    sell_file: sell.csv",
		"    buy_ratio: 1.5",
		"    sell_ratio: 1.5",
	)

	out, err := execute(t, "batch", "--jobs", jobs)
	require.NoError(t, err)

	assert.Contains(t, out, "Name      : weekly")
	assert.Contains(t, out, "[Batch] "+filepath.Join(dir, "single.csv")+" [1/2]")
	assert.Contains(t, out, "Round Trips  : 1.5")
	assert.Contains(t, out, "Batch weekly completed")
	assert.FileExists(t, filepath.Join(dir, "graphs", "single.png"))
	assert.FileExists(t, filepath.Join(dir, "graphs", "buy-sell.png"))

	fx, err := excelize.OpenFile(filepath.Join(dir, "out", "weekly.xlsx"))
	require.NoError(t, err)
	defer fx.Close()

	rows, err := fx.GetRows("Schedule")
	require.NoError(t, err)
	assert.Len(t, rows, 4) // header + BUY, SELL, BUY
}

func TestBatch_InvalidJobs(t *testing.T) {
	dir := setupEnv(t)
	jobs := writeFile(t, dir, "jobs.yaml",
		"meta:",
		"  name: broken",
		"reports:",
		"  - kind: single",
		"    target_ratio: 1.5",
	)

	_, err := execute(t, "batch", "--jobs", jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reports[0].file")
}

func TestClean(t *testing.T) {
	dir := setupEnv(t)
	path := writeFile(t, dir, "log.csv",
		"1,3,A,18,B,18,1,2,2,0",
		"",
		"1,1,A,18,B,18,1,2,2,0",
		"1,3,A,18,B,18,1,2,2,0",
	)

	out, err := execute(t, "clean", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 rows [1/1]")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,1,A,18,B,18,1,2,2,0\n1,3,A,18,B,18,1,2,2,0\n", string(data))
}

func TestBatch_CleanInputDisabled(t *testing.T) {
	dir := setupEnv(t)
	unsorted := "1,9,A,18,B,18,1,2,2,0\n1,3,A,18,B,18,1,2,2,0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "raw.csv"), []byte(unsorted), 0o644))
	jobs := writeFile(t, dir, "jobs.yaml",
		"meta:",
		"  name: raw",
		"  clean_input: false",
		"reports:",
		"  - kind: single",
		"    file: raw.csv",
		"    target_ratio: 1.5",
	)

	_, err := execute(t, "batch", "--jobs", jobs)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "raw.csv"))
	require.NoError(t, err)
	assert.Equal(t, unsorted, string(data))
}
