package perf

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{99.99, "R$99,99"},
		{125430.55, "R$125.430,55"},
		// Sub-cent amounts round to the nearest cent, they are not truncated.
		{99.999, "R$100,00"},
		{0.005, "R$0,01"},
	}
	for _, test := range tests {
		if got := BRL(test.value).String(); got != test.want {
			t.Errorf("BRL(%v).String() = %q, want %q", test.value, got, test.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	sum := BRL(100.10).Add(BRL(0.90))
	if !sum.Equal(BRL(101)) {
		t.Errorf("100.10 + 0.90 = %s, want R$101,00", sum)
	}
	if got := (Money{}).Add(BRL(5)); got.Currency() != "BRL" {
		t.Errorf("zero-value money adopts the other currency, got %q", got.Currency())
	}
}
