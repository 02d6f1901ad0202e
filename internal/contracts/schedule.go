package contracts

// Side identifies which leg of a round trip a trade belongs to
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// ScheduledTrade is one entry of the Sub1 buy/sell alternation
type ScheduledTrade struct {
	Side   Side        `json:"side"`
	Record TradeRecord `json:"record"`
}
