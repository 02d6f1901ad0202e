package contracts

import (
	"encoding/json"
	"testing"
)

func TestDataset_ProfitableRate(t *testing.T) {
	tests := []struct {
		name    string
		dataset Dataset
		want    float64
	}{
		{
			name: "half profitable",
			dataset: Dataset{
				BlockCount:       4,
				ProfitableTrades: make([]TradeRecord, 2),
			},
			want: 0.5,
		},
		{
			name:    "none profitable",
			dataset: Dataset{BlockCount: 3},
			want:    0.0,
		},
		{
			name:    "no rows",
			dataset: Dataset{},
			want:    0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dataset.ProfitableRate(); got != tt.want {
				t.Errorf("ProfitableRate() = %v, want %v", got, tt.want)
			}
			if got := tt.dataset.ClearThresholdCount(); got != len(tt.dataset.ProfitableTrades) {
				t.Errorf("ClearThresholdCount() = %d, want %d", got, len(tt.dataset.ProfitableTrades))
			}
		})
	}
}

func TestTradeRecord_BlockLabel(t *testing.T) {
	r := TradeRecord{BlockNumber: 18_000_123}
	if got := r.BlockLabel(); got != "18000123" {
		t.Errorf("BlockLabel() = %s, want 18000123", got)
	}
}

func TestSide_Opposite(t *testing.T) {
	if SideBuy.Opposite() != SideSell {
		t.Error("expected BUY -> SELL")
	}
	if SideSell.Opposite() != SideBuy {
		t.Error("expected SELL -> BUY")
	}
}

func TestTradeRecord_JSON(t *testing.T) {
	r := TradeRecord{
		ChainID:         "137",
		BlockNumber:     42,
		ToTokenDecimals: 6,
		AmountIn:        "1.5",
		Ratio:           1.01,
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded["block_number"] != float64(42) {
		t.Errorf("expected block_number=42, got %v", decoded["block_number"])
	}
	if decoded["amount_in"] != "1.5" {
		t.Errorf("expected amount_in=1.5, got %v", decoded["amount_in"])
	}
}
