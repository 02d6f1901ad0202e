package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/wonny/swapreport/internal/contracts"
)

// Sheet names
const (
	SummarySheet    = "Summary"
	ProfitableSheet = "Profitable"
	ScheduleSheet   = "Schedule"
)

var (
	summaryHeaders = []string{
		"Report", "Kind", "Target / Buy Ratio", "Sell Ratio", "Rows",
		"Avg Ratio", "Ratio StdDev", "Cleared", "Round Trips", "Return", "Chart",
	}
	tradeHeaders    = append([]string{"Report"}, contracts.TradeColumns[:]...)
	scheduleHeaders = append([]string{"Report", "#", "Side"}, contracts.TradeColumns[:]...)
)

// Workbook collects report summaries and writes them as one XLSX file.
// Rows are appended in the order reports are added.
type Workbook struct {
	summaries [][]interface{}
	trades    [][]interface{}
	schedule  [][]interface{}
}

// NewWorkbook creates an empty workbook
func NewWorkbook() *Workbook {
	return &Workbook{}
}

// AddReport appends a single-file report
func (w *Workbook) AddReport(s *contracts.ReportSummary) {
	w.summaries = append(w.summaries, []interface{}{
		s.FileName, "single", s.TargetRatio, "", s.BlockCount,
		s.AvgRatio, s.RatioStdDev, s.ClearThresholdCount, "", "", s.ChartPath,
	})
	for i := range s.ProfitableTrades {
		w.trades = append(w.trades, append([]interface{}{s.FileName}, recordCells(&s.ProfitableTrades[i])...))
	}
}

// AddSub1 appends a buy/sell alternation report
func (w *Workbook) AddSub1(s *contracts.Sub1Summary) {
	w.summaries = append(w.summaries, []interface{}{
		s.Name, "sub1", s.BuyRatio, s.SellRatio, s.BuyProfitable + s.SellProfitable,
		"", "", len(s.Trades), s.RoundTrips, s.ReturnForPeriod, s.ChartPath,
	})
	for i := range s.Trades {
		t := &s.Trades[i]
		row := []interface{}{s.Name, i + 1, string(t.Side)}
		w.schedule = append(w.schedule, append(row, recordCells(&t.Record)...))
	}
}

// Len returns the number of reports added so far
func (w *Workbook) Len() int {
	return len(w.summaries)
}

// Save writes the workbook to path, creating parent directories
func (w *Workbook) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	if err := fx.SetSheetName(fx.GetSheetName(0), SummarySheet); err != nil {
		return err
	}
	for _, name := range []string{ProfitableSheet, ScheduleSheet} {
		if _, err := fx.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	header, err := headerStyle(fx)
	if err != nil {
		return err
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{SummarySheet, summaryHeaders, w.summaries},
		{ProfitableSheet, tradeHeaders, w.trades},
		{ScheduleSheet, scheduleHeaders, w.schedule},
	}
	for _, s := range sheets {
		if err := writeSheet(fx, s.name, s.headers, s.rows, header); err != nil {
			return fmt.Errorf("write sheet %s: %w", s.name, err)
		}
	}

	return fx.SaveAs(path)
}

func writeSheet(fx *excelize.File, sheet string, headers []string, rows [][]interface{}, style int) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := fx.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := fx.SetCellStyle(sheet, first, last, style); err != nil {
		return err
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := fx.SetColWidth(sheet, "A", lastCol, 16); err != nil {
		return err
	}

	// 헤더 고정
	return fx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// headerStyle - Dark slate background with white bold text
func headerStyle(fx *excelize.File) (int, error) {
	return fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// recordCells keeps amounts as text; they exceed float64 precision
func recordCells(r *contracts.TradeRecord) []interface{} {
	return []interface{}{
		r.ChainID,
		r.BlockNumber,
		r.FromToken,
		r.FromTokenDecimals,
		r.ToToken,
		r.ToTokenDecimals,
		r.AmountIn,
		r.AmountOut,
		r.Ratio,
		r.GasCostInToken,
	}
}
