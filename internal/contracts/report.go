package contracts

// ChartType names the chart kind handed to the renderer
type ChartType string

const (
	ChartTypeLine ChartType = "line"
)

// AxisScale controls how x labels are placed
type AxisScale string

const (
	AxisCategory AxisScale = "category" // evenly spaced labels
	AxisLinear   AxisScale = "linear"   // labels placed at their numeric value
)

// ChartConfig is the contract between report orchestrators and a chart renderer
type ChartConfig struct {
	Type   ChartType `json:"type"`
	Title  string    `json:"title"`
	XTitle string    `json:"x_title"`
	YTitle string    `json:"y_title"`
	XAxis  AxisScale `json:"x_axis"`

	Labels []string  `json:"labels"` // block numbers
	Values []float64 `json:"values"` // ratios

	// Presentation only
	Width                int     `json:"width"`
	Height               int     `json:"height"`
	PointRadius          float64 `json:"point_radius"`
	AlternatePointColors bool    `json:"alternate_point_colors"`
}

// ReportSummary is returned by the single-file report
type ReportSummary struct {
	FileName            string        `json:"file_name"`
	TargetRatio         float64       `json:"target_ratio"`
	BlockCount          int           `json:"block_count"`
	AvgRatio            float64       `json:"avg_ratio"`
	RatioStdDev         float64       `json:"ratio_std_dev"`
	ClearThresholdCount int           `json:"clear_threshold_count"`
	ProfitableRate      float64       `json:"profitable_rate"` // cleared / rows
	ChartPath           string        `json:"chart_path"`
	ProfitableTrades    []TradeRecord `json:"profitable_trades,omitempty"`
}

// Sub1Summary is returned by the buy/sell alternation report
type Sub1Summary struct {
	Name            string           `json:"name"`
	BuyRatio        float64          `json:"buy_ratio"`
	SellRatio       float64          `json:"sell_ratio"`
	BuyProfitable   int              `json:"buy_profitable"`
	SellProfitable  int              `json:"sell_profitable"`
	RoundTrips      float64          `json:"round_trips"` // len(trades)/2, not floored
	ReturnForPeriod float64          `json:"return_for_period"`
	ChartPath       string           `json:"chart_path"`
	Trades          []ScheduledTrade `json:"trades,omitempty"`
}
