package convert

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxNet(t *testing.T) {
	b, err := Tax(decimal.NewFromInt(100), TaxModeNet)
	require.NoError(t, err)
	assert.Equal(t, "100.00", b.Effective.StringFixed(2))
	assert.Equal(t, "20.75", b.Tax.StringFixed(2))
	assert.Equal(t, "120.75", b.Total.StringFixed(2))
}

func TestTaxGross(t *testing.T) {
	b, err := Tax(decimal.RequireFromString("120.75"), TaxModeGross)
	require.NoError(t, err)
	assert.Equal(t, "100.00", b.Effective.StringFixed(2))
	assert.Equal(t, "20.75", b.Tax.StringFixed(2))
	assert.Equal(t, "120.75", b.Total.StringFixed(2))
}

func TestTaxInvalid(t *testing.T) {
	_, err := Tax(decimal.NewFromInt(-1), TaxModeNet)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Tax(decimal.NewFromInt(1), "both")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestData(t *testing.T) {
	v, err := Data(1, "gb", "mb")
	require.NoError(t, err)
	assert.Equal(t, 1024.0, v)

	v, err = Data(2048, "KB", "mb")
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = Data(0, "gb", "mb")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Data(1, "pb", "mb")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTime(t *testing.T) {
	v, err := Time(2, "day", "hour")
	require.NoError(t, err)
	assert.Equal(t, 48.0, v)

	v, err = Time(90, "minute", "hour")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = Time(1, "week", "day")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEpoch(t *testing.T) {
	secs, err := ToEpoch("2024-01-15 14:30:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1705329000), secs)

	secs, err = ToEpoch("2024-01-15T17:30:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1705329000), secs)

	_, err = ToEpoch("yesterday")
	assert.ErrorIs(t, err, ErrInvalidDate)

	s, err := FromEpoch("1705329000")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 14:30:00", s)

	_, err = FromEpoch("soon")
	assert.ErrorIs(t, err, ErrInvalidEpoch)
}
