package evaluator

import (
	"fmt"

	"github.com/wonny/swapreport/internal/contracts"
	"github.com/wonny/swapreport/pkg/fixedpoint"
)

const (
	// Scale is the fixed-point precision of the target ratio and of AmountIn
	Scale = 18

	// MaxToTokenDecimals bounds ToTokenDecimals: the multiplication carries
	// 2*Scale digits and is reduced by 10^(2*Scale - ToTokenDecimals).
	MaxToTokenDecimals = 2 * Scale
)

// Evaluation holds the intermediate values of one profitability check
type Evaluation struct {
	AmountOutCalculated fixedpoint.Value // at ToTokenDecimals
	AmountOutReceived   fixedpoint.Value // at ToTokenDecimals
	GasCost             fixedpoint.Value // at ToTokenDecimals
	CoversTarget        bool             // received >= calculated + gas
	BeatsRatio          bool             // record.Ratio > target
	Profitable          bool
}

// Evaluator decides whether trades cleared a target ratio
// ⭐ SSOT: 수익성 판정은 여기서만 (정수 고정소수점 연산)
type Evaluator struct {
	target     float64
	ratioFixed fixedpoint.Value
}

// New scales targetRatio to Scale decimals
func New(targetRatio float64) (*Evaluator, error) {
	ratioFixed, err := fixedpoint.FromFloat(targetRatio, Scale)
	if err != nil {
		return nil, &contracts.ParseError{
			Column: "targetRatio",
			Value:  fmt.Sprint(targetRatio),
			Err:    err,
		}
	}

	return &Evaluator{
		target:     targetRatio,
		ratioFixed: ratioFixed,
	}, nil
}

// IsProfitable reports whether rec cleared the target
func (e *Evaluator) IsProfitable(rec contracts.TradeRecord) (bool, error) {
	ev, err := e.Evaluate(rec)
	if err != nil {
		return false, err
	}
	return ev.Profitable, nil
}

// Evaluate runs the fixed-point comparison for one record.
//
// AmountIn is always read at Scale decimals, whatever FromTokenDecimals says;
// the trade logs this tool reads only carry 18-decimal input tokens.
func (e *Evaluator) Evaluate(rec contracts.TradeRecord) (Evaluation, error) {
	if rec.ToTokenDecimals < 0 || rec.ToTokenDecimals > MaxToTokenDecimals {
		return Evaluation{}, &contracts.InvalidDecimalsError{
			Field:    "toTokenDecimals",
			Decimals: rec.ToTokenDecimals,
			Max:      MaxToTokenDecimals,
		}
	}

	amountIn, err := parseAmount("amountIn", rec.AmountIn, Scale)
	if err != nil {
		return Evaluation{}, err
	}

	divisor, err := fixedpoint.Pow10(MaxToTokenDecimals - rec.ToTokenDecimals)
	if err != nil {
		return Evaluation{}, err
	}
	calculated := amountIn.Mul(e.ratioFixed).Quo(divisor)

	received, err := parseAmount("amountOut", rec.AmountOut, rec.ToTokenDecimals)
	if err != nil {
		return Evaluation{}, err
	}

	gas, err := parseAmount("gasCostInToken", rec.GasCostInToken, rec.ToTokenDecimals)
	if err != nil {
		return Evaluation{}, err
	}

	ev := Evaluation{
		AmountOutCalculated: calculated,
		AmountOutReceived:   received,
		GasCost:             gas,
		CoversTarget:        received.Cmp(calculated.Add(gas)) >= 0,
		BeatsRatio:          rec.Ratio > e.target,
	}
	ev.Profitable = ev.CoversTarget && ev.BeatsRatio

	return ev, nil
}

func parseAmount(column, raw string, scale int) (fixedpoint.Value, error) {
	v, err := fixedpoint.Parse(raw, scale)
	if err != nil {
		return fixedpoint.Value{}, &contracts.ParseError{
			Column: column,
			Value:  raw,
			Err:    err,
		}
	}
	return v, nil
}
