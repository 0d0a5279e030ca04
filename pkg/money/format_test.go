package money

import "testing"

func TestFormatRs(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rs. 0.00"},
		{250, "Rs. 250.00"},
		{2142.857142857143, "Rs. 2142.86"},
		{2288.25, "Rs. 2288.25"},
		{0.5, "Rs. 0.50"},
	}
	for _, tt := range tests {
		if got := FormatRs(tt.amount); got != tt.want {
			t.Errorf("FormatRs(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
