package jobconfig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError 검증 실패 (프로그램 중단)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Warning 권장 위반 (경고만)
type Warning struct {
	Code    string
	Message string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report yaml names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks all required constraints and returns the first violation
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	return ValidationError{
		Field:   fieldPath(fe.Namespace()),
		Message: describe(fe),
	}
}

// Warn checks recommended constraints (non-fatal)
func Warn(cfg *Config) []Warning {
	var warnings []Warning

	for i, j := range cfg.Reports {
		switch j.Kind {
		case KindSub1:
			if j.BuyFile == j.SellFile {
				warnings = append(warnings, Warning{
					Code:    "SAME_FILE",
					Message: fmt.Sprintf("reports[%d]: buy_file and sell_file are the same log", i),
				})
			}
			if j.BuyRatio*j.SellRatio < 1 {
				warnings = append(warnings, Warning{
					Code:    "LOSING_ROUND_TRIP",
					Message: fmt.Sprintf("reports[%d]: buy_ratio*sell_ratio < 1, every round trip compounds a loss", i),
				})
			}
		case KindSingle:
			if j.TargetRatio < 1 {
				warnings = append(warnings, Warning{
					Code:    "LOW_TARGET",
					Message: fmt.Sprintf("reports[%d]: target_ratio < 1 admits losing trades", i),
				})
			}
		}
	}

	return warnings
}

// fieldPath drops the root struct name: "Config.reports[0].file" → "reports[0].file"
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "required_if":
		return fmt.Sprintf("required when %s", strings.Replace(fe.Param(), " ", "=", 1))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
