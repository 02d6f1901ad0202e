package dataset

import (
	"github.com/samber/lo"

	"github.com/wonny/swapreport/internal/contracts"
)

// BlockRatios splits records into index-aligned chart labels and values
func BlockRatios(records []contracts.TradeRecord) contracts.ChartSeries {
	return contracts.ChartSeries{
		BlockNumbers: lo.Map(records, func(r contracts.TradeRecord, _ int) string {
			return r.BlockLabel()
		}),
		Ratios: lo.Map(records, func(r contracts.TradeRecord, _ int) float64 {
			return r.Ratio
		}),
	}
}

// ScheduledBlockRatios is BlockRatios over a Sub1 schedule
func ScheduledBlockRatios(trades []contracts.ScheduledTrade) contracts.ChartSeries {
	return BlockRatios(lo.Map(trades, func(t contracts.ScheduledTrade, _ int) contracts.TradeRecord {
		return t.Record
	}))
}
