package money

import "fmt"

// FormatRs renders a currency amount the way every customer-facing surface
// shows it: "Rs." prefix, two decimals.
func FormatRs(amount float64) string {
	return fmt.Sprintf("Rs. %.2f", amount)
}
