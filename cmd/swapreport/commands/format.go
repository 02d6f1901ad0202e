package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wonny/swapreport/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const (
	doubleLine = "═══════════════════════════════════════════════════════════"
	singleLine = "───────────────────────────────────────────────────────────"
)

// JobMetadata holds run header data
type JobMetadata struct {
	JobType    string
	Name       string
	ConfigHash string // Optional
	GraphsDir  string
	Jobs       int // Optional
}

// PrintJobHeader prints a formatted run header
func PrintJobHeader(w io.Writer, meta JobMetadata) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, doubleLine)
	fmt.Fprintf(w, "  %s\n", meta.JobType)
	fmt.Fprintln(w, singleLine)
	fmt.Fprintf(w, "  Name      : %s\n", meta.Name)

	if meta.ConfigHash != "" {
		fmt.Fprintf(w, "  Config    : %s\n", shortHash(meta.ConfigHash))
	}
	if meta.Jobs > 0 {
		fmt.Fprintf(w, "  Jobs      : %d\n", meta.Jobs)
	}

	fmt.Fprintf(w, "  Graphs    : %s\n", meta.GraphsDir)
	fmt.Fprintln(w, singleLine)
}

// PrintProgress prints a progress step with counter
// Example: [Batch] weth-usdc.csv [1/3]
func PrintProgress(w io.Writer, tag string, message string, current int, total int) {
	fmt.Fprintf(w, "[%s] %s [%d/%d]\n", tag, message, current, total)
}

// PrintSeparator prints a visual separator
func PrintSeparator(w io.Writer) {
	fmt.Fprintln(w, singleLine)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "⚠️  %s\n", message)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "✅ %s\n", message)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "❌ %s\n", message)
}

// PrintTableHeader prints a table header
func PrintTableHeader(w io.Writer, columns []string, widths []int) {
	PrintTableRow(w, columns, widths)

	// Separator line
	totalWidth := 0
	for i, width := range widths {
		totalWidth += width
		if i < len(widths)-1 {
			totalWidth += 2 // spacing
		}
	}
	fmt.Fprintln(w, strings.Repeat("─", totalWidth))
}

// PrintTableRow prints a table row
func PrintTableRow(w io.Writer, values []string, widths []int) {
	for i, val := range values {
		fmt.Fprintf(w, "%-*s", widths[i], val)
		if i < len(values)-1 {
			fmt.Fprint(w, "  ")
		}
	}
	fmt.Fprintln(w)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(w io.Writer, key string, value string, keyWidth int) {
	fmt.Fprintf(w, "   %-*s : %s\n", keyWidth, key, value)
}

// printReportSummary prints a single-file report
func printReportSummary(w io.Writer, s *contracts.ReportSummary) {
	fmt.Fprintf(w, "\n📊 %s (target %s)\n", s.FileName, formatRatio(s.TargetRatio))
	PrintKeyValue(w, "Rows", strconv.Itoa(s.BlockCount), 12)
	PrintKeyValue(w, "Avg Ratio", formatRatio(s.AvgRatio), 12)
	PrintKeyValue(w, "Std Dev", formatRatio(s.RatioStdDev), 12)
	PrintKeyValue(w, "Cleared", fmt.Sprintf("%d (%s)", s.ClearThresholdCount, formatRate(s.ProfitableRate)), 12)
	PrintKeyValue(w, "Chart", s.ChartPath, 12)
}

// printSub1Summary prints a buy/sell alternation report with its schedule
func printSub1Summary(w io.Writer, s *contracts.Sub1Summary) {
	fmt.Fprintf(w, "\n🔄 %s (buy %s / sell %s)\n", s.Name, formatRatio(s.BuyRatio), formatRatio(s.SellRatio))
	PrintKeyValue(w, "Buy Cleared", strconv.Itoa(s.BuyProfitable), 12)
	PrintKeyValue(w, "Sell Cleared", strconv.Itoa(s.SellProfitable), 12)
	PrintKeyValue(w, "Scheduled", strconv.Itoa(len(s.Trades)), 12)
	PrintKeyValue(w, "Round Trips", strconv.FormatFloat(s.RoundTrips, 'f', -1, 64), 12)
	PrintKeyValue(w, "Return", formatRatio(s.ReturnForPeriod), 12)
	PrintKeyValue(w, "Chart", s.ChartPath, 12)

	if len(s.Trades) == 0 {
		return
	}

	fmt.Fprintln(w)
	widths := []int{4, 6, 12, 10}
	PrintTableHeader(w, []string{"#", "Side", "Block", "Ratio"}, widths)
	for i, t := range s.Trades {
		PrintTableRow(w, []string{
			strconv.Itoa(i + 1),
			string(t.Side),
			t.Record.BlockLabel(),
			formatRatio(t.Record.Ratio),
		}, widths)
	}
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 6, 64)
}

// formatRate renders a 0..1 share as a percentage
func formatRate(r float64) string {
	return fmt.Sprintf("%.2f%%", r*100)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}

// exportPath places a bare file name under dir
func exportPath(dir, name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(dir, name)
}
