package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wonny/swapreport/internal/contracts"
)

// ParseRecord maps one CSV row onto a TradeRecord by column position.
// Amount columns are kept as strings; they are validated when evaluated.
func ParseRecord(row []string) (contracts.TradeRecord, error) {
	if len(row) < contracts.TradeColumnCount {
		return contracts.TradeRecord{}, &contracts.ParseError{
			Value: strings.Join(row, ","),
			Err:   fmt.Errorf("expected %d columns, got %d", contracts.TradeColumnCount, len(row)),
		}
	}

	field := func(i int) string { return strings.TrimSpace(row[i]) }

	blockNumber, err := strconv.ParseUint(field(1), 10, 64)
	if err != nil {
		return contracts.TradeRecord{}, columnError(1, field(1), err)
	}

	fromDecimals, err := parseDecimals(3, field(3))
	if err != nil {
		return contracts.TradeRecord{}, err
	}

	toDecimals, err := parseDecimals(5, field(5))
	if err != nil {
		return contracts.TradeRecord{}, err
	}

	ratio, err := strconv.ParseFloat(field(8), 64)
	if err != nil {
		return contracts.TradeRecord{}, columnError(8, field(8), err)
	}

	return contracts.TradeRecord{
		ChainID:           field(0),
		BlockNumber:       blockNumber,
		FromToken:         field(2),
		FromTokenDecimals: fromDecimals,
		ToToken:           field(4),
		ToTokenDecimals:   toDecimals,
		AmountIn:          field(6),
		AmountOut:         field(7),
		Ratio:             ratio,
		GasCostInToken:    field(9),
	}, nil
}

func parseDecimals(col int, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, columnError(col, raw, err)
	}
	if n < 0 {
		return 0, &contracts.InvalidDecimalsError{
			Field:    contracts.TradeColumns[col],
			Decimals: n,
			Max:      maxDecimals,
		}
	}
	return n, nil
}

func columnError(col int, raw string, err error) error {
	return &contracts.ParseError{
		Column: contracts.TradeColumns[col],
		Value:  raw,
		Err:    err,
	}
}
