package matcher

import (
	"math"

	"github.com/wonny/swapreport/internal/contracts"
)

// Alternate merges profitable buy and sell trades into a buy → sell → buy …
// schedule. Each turn takes the earliest trade of the active side whose block
// is strictly after the last scheduled block; the schedule ends as soon as the
// active side has none left.
//
// Both inputs must be sorted by block number ascending (dataset.CleanSort).
// Under that precondition one forward pointer per side visits the same trades
// a restart-from-zero scan would.
func Alternate(buys, sells []contracts.TradeRecord) []contracts.ScheduledTrade {
	schedule := make([]contracts.ScheduledTrade, 0)

	lists := map[contracts.Side][]contracts.TradeRecord{
		contracts.SideBuy:  buys,
		contracts.SideSell: sells,
	}
	cursor := map[contracts.Side]int{}

	turn := contracts.SideBuy
	var currentBlock uint64

	for {
		list := lists[turn]
		i := cursor[turn]

		// strict >: 같은 블록은 절대 두 번 체결하지 않음
		for i < len(list) && list[i].BlockNumber <= currentBlock {
			i++
		}
		cursor[turn] = i

		if i == len(list) {
			return schedule
		}

		rec := list[i]
		schedule = append(schedule, contracts.ScheduledTrade{Side: turn, Record: rec})
		currentBlock = rec.BlockNumber
		cursor[turn] = i + 1
		turn = turn.Opposite()
	}
}

// RoundTrips is half the schedule length; an unmatched final buy counts as 0.5
func RoundTrips(scheduleLen int) float64 {
	return float64(scheduleLen) / 2
}

// ReturnForPeriod compounds one buy and one sell at their target ratios per
// round trip. It uses the targets, not the realized trade ratios.
func ReturnForPeriod(buyRatio, sellRatio, roundTrips float64) float64 {
	return math.Pow(buyRatio*sellRatio, roundTrips)
}
