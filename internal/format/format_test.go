package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromInt(1_500_000_000), "$1.50B"},
		{decimal.NewFromInt(2_300_000_000_000), "$2.30T"},
		{decimal.NewFromInt(999), "$999.00"},
		{decimal.NewFromInt(12_345_678), "$12.35M"},
		{decimal.NewFromInt(1_000_000), "$1.00M"},
		{decimal.NewFromInt(999_999), "$999,999.00"},
		{decimal.NewFromInt(1_000_000_000_000_000), "$1000.00T"},
		{decimal.Zero, "$0.00"},
	}

	for _, tt := range tests {
		if got := Compact(tt.in); got != tt.want {
			t.Errorf("Compact(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"65000.125", "$65,000.13"},
		{"0.5", "$0.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-42.1", "-$42.10"},
		{"-0.001", "$0.00"},
		{"12345678901234567890.1", "$12,345,678,901,234,567,890.10"},
	}

	for _, tt := range tests {
		got := Currency(decimal.RequireFromString(tt.in))
		if got != tt.want {
			t.Errorf("Currency(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(decimal.RequireFromString("2.044")); got != "+2.04%" {
		t.Errorf("got %q", got)
	}
	if got := Percent(decimal.RequireFromString("-1.5")); got != "-1.50%" {
		t.Errorf("got %q", got)
	}
	if got := Percent(decimal.Zero); got != "0.00%" {
		t.Errorf("got %q", got)
	}
}

func TestTimeLabel(t *testing.T) {
	ts := time.Date(2026, 10, 15, 14, 5, 9, 0, time.UTC)

	if got := TimeLabel(ts, time.UTC); got != "2:05:09 PM" {
		t.Errorf("TimeLabel = %q, want %q", got, "2:05:09 PM")
	}

	tokyo := time.FixedZone("JST", 9*3600)
	if got := TimeLabel(ts, tokyo); got != "11:05:09 PM" {
		t.Errorf("TimeLabel(JST) = %q, want %q", got, "11:05:09 PM")
	}

	// Deterministic regardless of call order
	first := TimeLabel(ts, time.UTC)
	_ = TimeLabel(ts.Add(time.Hour), tokyo)
	if again := TimeLabel(ts, time.UTC); again != first {
		t.Errorf("TimeLabel not deterministic: %q vs %q", first, again)
	}
}
