package finboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(decimal.RequireFromString("0.125"), "USD"), "$0.13"},
		{M(3.14159, ""), "3.14"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := M(2, "USD").SignedString(); got != "+$2.00" {
		t.Errorf("SignedString(2) = %q, want +$2.00", got)
	}
	if got := M(-2, "USD").SignedString(); got != "-$2.00" {
		t.Errorf("SignedString(-2) = %q, want -$2.00", got)
	}
}

func TestPercent_SignedString(t *testing.T) {
	for p, want := range map[Percent]string{0: "-", 12.5: "+12.50%", -3: "-3.00%", -0.001: "-"} {
		if got := p.SignedString(); got != want {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(p), got, want)
		}
	}
}
