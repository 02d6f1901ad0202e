package contracts

import "strconv"

// TradeColumnCount is the number of columns in one trade log row
const TradeColumnCount = 10

// Trade log column names, in file order
var TradeColumns = [TradeColumnCount]string{
	"chainId",
	"blockNumber",
	"fromToken",
	"fromTokenDecimals",
	"toToken",
	"toTokenDecimals",
	"amountIn",
	"amountOut",
	"ratio",
	"gasCostInToken",
}

// TradeRecord is one row of a swap trade log
// ⭐ SSOT: 파일 → Loader → Evaluator/Matcher 로 전달되는 단일 거래 레코드
type TradeRecord struct {
	ChainID           string  `json:"chain_id"`
	BlockNumber       uint64  `json:"block_number"`
	FromToken         string  `json:"from_token"`
	FromTokenDecimals int     `json:"from_token_decimals"`
	ToToken           string  `json:"to_token"`
	ToTokenDecimals   int     `json:"to_token_decimals"`
	AmountIn          string  `json:"amount_in"`  // 항상 18 decimals 로 해석
	AmountOut         string  `json:"amount_out"` // ToTokenDecimals 로 해석
	Ratio             float64 `json:"ratio"`
	GasCostInToken    string  `json:"gas_cost_in_token"` // ToTokenDecimals 로 해석
}

// BlockLabel returns the block number as a chart label
func (r *TradeRecord) BlockLabel() string {
	return strconv.FormatUint(r.BlockNumber, 10)
}

// Dataset is the result of loading one trade log against a target ratio
type Dataset struct {
	FileName         string        `json:"file_name"`
	ProfitableTrades []TradeRecord `json:"profitable_trades"`
	BlockCount       int           `json:"block_count"` // rows processed, not unique blocks
	AvgRatio         float64       `json:"avg_ratio"`   // mean over every row
	RatioStdDev      float64       `json:"ratio_std_dev"`
}

// ClearThresholdCount returns the number of trades that cleared the target
func (d *Dataset) ClearThresholdCount() int {
	return len(d.ProfitableTrades)
}

// ProfitableRate returns the share of rows that cleared the target
func (d *Dataset) ProfitableRate() float64 {
	if d.BlockCount == 0 {
		return 0.0
	}
	return float64(len(d.ProfitableTrades)) / float64(d.BlockCount)
}

// ChartSeries holds index-aligned x labels and y values
type ChartSeries struct {
	BlockNumbers []string  `json:"block_numbers"`
	Ratios       []float64 `json:"ratios"`
}

// Len returns the number of points
func (s *ChartSeries) Len() int {
	return len(s.Ratios)
}
