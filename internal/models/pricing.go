package models

// PricingResult is the derived cost breakdown for a draft. It is recomputed
// from scratch on every relevant input change and never mutated in place.
type PricingResult struct {
	Subtotal            float64 `json:"subtotal"`
	DeliveryFee         float64 `json:"deliveryFee"`
	Tax                 float64 `json:"tax"`
	Discount            float64 `json:"discount"`
	GrandTotal          float64 `json:"grandTotal"`
	DeliveryDaysPerWeek int     `json:"deliveryDaysPerWeek"`
}
