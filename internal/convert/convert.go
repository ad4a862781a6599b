// Package convert implements the calculators on the utilities pages.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("enter a valid non-negative number")
	ErrInvalidMode   = errors.New("invalid mode")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidEpoch  = errors.New("invalid epoch")
)

// TaxRate is the combined excise and VAT rate applied to airtime.
var TaxRate = decimal.RequireFromString("0.2075")

const (
	TaxModeNet   = "net"
	TaxModeGross = "gross"
)

// TaxBreakdown is rounded to two decimal places.
type TaxBreakdown struct {
	Effective decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// Tax splits amount into its effective value and tax. In net mode amount is
// the pre-tax value; in gross mode it already includes tax.
func Tax(amount decimal.Decimal, mode string) (TaxBreakdown, error) {
	if amount.IsNegative() {
		return TaxBreakdown{}, ErrInvalidAmount
	}

	var effective, tax, total decimal.Decimal
	switch mode {
	case TaxModeNet, "":
		effective = amount
		tax = amount.Mul(TaxRate)
		total = effective.Add(tax)
	case TaxModeGross:
		total = amount
		effective = amount.Div(decimal.NewFromInt(1).Add(TaxRate))
		tax = total.Sub(effective)
	default:
		return TaxBreakdown{}, fmt.Errorf("%w %q", ErrInvalidMode, mode)
	}

	return TaxBreakdown{
		Effective: effective.Round(2),
		Tax:       tax.Round(2),
		Total:     total.Round(2),
	}, nil
}

var (
	dataUnits = map[string]float64{
		"byte": 1,
		"kb":   1 << 10,
		"mb":   1 << 20,
		"gb":   1 << 30,
		"tb":   1 << 40,
	}
	timeUnits = map[string]float64{
		"second": 1,
		"minute": 60,
		"hour":   3600,
		"day":    86400,
	}
)

// Data converts between byte, kb, mb, gb and tb using binary multiples.
func Data(value float64, from, to string) (float64, error) {
	return scale(dataUnits, value, from, to)
}

// Time converts between second, minute, hour and day.
func Time(value float64, from, to string) (float64, error) {
	return scale(timeUnits, value, from, to)
}

func scale(units map[string]float64, value float64, from, to string) (float64, error) {
	f, ok := units[strings.ToLower(from)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, from)
	}
	t, ok := units[strings.ToLower(to)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, to)
	}
	if value == 0 {
		return 0, ErrInvalidInput
	}
	return value * (f / t), nil
}

// EpochLayout is the human readable side of the epoch converter.
const EpochLayout = "2006-01-02 15:04:05"

var dateLayouts = []string{EpochLayout, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02"}

// ToEpoch parses a date, read as UTC unless it carries an offset, into Unix
// seconds.
func ToEpoch(value string) (int64, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, ErrInvalidDate
}

// FromEpoch formats Unix seconds as a UTC date.
func FromEpoch(value string) (string, error) {
	secs, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return "", ErrInvalidEpoch
	}
	return time.Unix(secs, 0).UTC().Format(EpochLayout), nil
}
