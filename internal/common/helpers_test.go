package common

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMicroToCARES(t *testing.T) {
	assert.Equal(t, "1500", MicroToCARES(1_500_000_000))
	assert.Equal(t, "0.5", MicroToCARES(500_000))
	assert.Equal(t, "24.981836", MicroToCARES(24_981_836))
	assert.Equal(t, "0", MicroToCARES(0))
}

func TestCARESToMicro(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1500", 1_500_000_000},
		{"0.5", 500_000},
		{".25", 250_000},
		{" 24.981836 ", 24_981_836},
		{"1.1234569", 1_123_456}, // truncated to six places
	}
	for _, tt := range tests {
		got, err := CARESToMicro(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "abc", "1.2.3", "-5"} {
		_, err := CARESToMicro(bad)
		assert.Error(t, err, bad)
	}
}

func TestCARESToMicro_RejectsOverflow(t *testing.T) {
	// 9223372036854.775807 CARES is math.MaxInt64 micro-CARES
	micro, err := CARESToMicro("9223372036854.775807")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), micro)

	_, err = CARESToMicro("9223372036854.775808")
	assert.ErrorIs(t, err, ErrAmountTooLarge)

	_, err = CARESToMicro("10000000000000")
	assert.ErrorIs(t, err, ErrAmountTooLarge)

	// Past uint64 the parse itself fails instead of wrapping
	_, err = CARESToMicro("20000000000000")
	assert.Error(t, err)
}

func TestFormatCARES(t *testing.T) {
	assert.Equal(t, "1,500 CARES", FormatCARES("1500"))
	assert.Equal(t, "1,500.5 CARES", FormatCARES("1500.50"))
	assert.Equal(t, "0 CARES", FormatCARES(""))
	assert.Equal(t, "0 CARES", FormatCARES("0"))
}

func TestCalculatePercentage(t *testing.T) {
	assert.Equal(t, 0.0, CalculatePercentage(0, 100))
	assert.Equal(t, 0.0, CalculatePercentage(10, 0))
	assert.Equal(t, 25.0, CalculatePercentage(25, 100))
	assert.Equal(t, 100.0, CalculatePercentage(300, 100))
}

func TestDonationOptions(t *testing.T) {
	assert.Equal(t, []uint64{10, 25, 50, 100, 250}, DonationOptions(0))
	assert.Equal(t, []uint64{5, 10, 25, 50, 100}, DonationOptions(499*caresUnit))
	assert.Equal(t, []uint64{10, 25, 50, 100, 250}, DonationOptions(500*caresUnit))
	assert.Equal(t, []uint64{25, 50, 100, 250, 500}, DonationOptions(1000*caresUnit))
	assert.Equal(t, []uint64{50, 100, 250, 500, 1000}, DonationOptions(5000*caresUnit))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "March 4, 2025", FormatDate(time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)))
}
