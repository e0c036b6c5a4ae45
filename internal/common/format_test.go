package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "₹1234.50", FormatMoney(1234.5))
	assert.Equal(t, "₹0.00", FormatMoney(0))
}

func TestFormatSignedMoney(t *testing.T) {
	assert.Equal(t, "+₹12.34", FormatSignedMoney(12.34))
	assert.Equal(t, "-₹12.34", FormatSignedMoney(-12.34))
	assert.Equal(t, "+₹0.00", FormatSignedMoney(0))
}

func TestFormatSignedPct(t *testing.T) {
	assert.Equal(t, "+1.25%", FormatSignedPct(1.25))
	assert.Equal(t, "-0.50%", FormatSignedPct(-0.5))
}

func TestFormatLargeMoney(t *testing.T) {
	assert.Equal(t, "₹2.50T", FormatLargeMoney(2.5e12))
	assert.Equal(t, "₹5.00B", FormatLargeMoney(5e9))
	// 1e7 rupees is one crore; market caps land in this tier
	assert.Equal(t, "₹2000.00Cr", FormatLargeMoney(2e10))
	assert.Equal(t, "₹1.00Cr", FormatLargeMoney(1e7))
	assert.Equal(t, "₹5.00M", FormatLargeMoney(5e6))
	assert.Equal(t, "₹12,345", FormatLargeMoney(12345))
}

func TestFormatShares(t *testing.T) {
	assert.Equal(t, "1.50B", FormatShares(1_500_000_000))
	assert.Equal(t, "2.30M", FormatShares(2_300_000))
	assert.Equal(t, "4.00K", FormatShares(4000))
	assert.Equal(t, "999", FormatShares(999))
}

func TestFormatCompactInt(t *testing.T) {
	assert.Equal(t, "0", FormatCompactInt(0))
	assert.Equal(t, "999", FormatCompactInt(999))
	assert.Equal(t, "1,000", FormatCompactInt(1000))
	assert.Equal(t, "12,345,678", FormatCompactInt(12345678))
	assert.Equal(t, "-1,234", FormatCompactInt(-1234))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijk", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
