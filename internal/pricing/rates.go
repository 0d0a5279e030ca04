package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// Discount rule kinds. A percentage rule takes its value as a percent of the
// pre-discount amount; a flat_cap rule grants the amount itself up to a fixed
// ceiling.
const (
	DiscountPercentage = "percentage"
	DiscountFlatCap    = "flat_cap"
)

// DiscountRule maps one code to its reduction.
type DiscountRule struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Rates carries every constant the calculator needs, injected rather than
// hardcoded so deployments can override them without touching the math.
type Rates struct {
	FlatDeliveryRate float64                 `json:"flatDeliveryRate"` // per delivery day per week
	TaxRate          float64                 `json:"taxRate"`
	DiscountCodes    map[string]DiscountRule `json:"discountCodes"`
}

// DefaultRates returns the production table: Rs. 25 delivery per day, 13% VAT,
// and the four launch discount codes.
func DefaultRates() Rates {
	return Rates{
		FlatDeliveryRate: 25,
		TaxRate:          0.13,
		DiscountCodes: map[string]DiscountRule{
			"SAVE10":     {Type: DiscountPercentage, Value: 10},
			"WELCOME15":  {Type: DiscountPercentage, Value: 15},
			"FIRSTORDER": {Type: DiscountFlatCap, Value: 100},
			"TIFFIN5":    {Type: DiscountFlatCap, Value: 50},
		},
	}
}

// LoadRates reads a rates table from a JSON file.
func LoadRates(path string) (Rates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rates{}, fmt.Errorf("read pricing config: %w", err)
	}
	var r Rates
	if err := json.Unmarshal(data, &r); err != nil {
		return Rates{}, fmt.Errorf("parse pricing config: %w", err)
	}
	if err := validateRates(r); err != nil {
		return Rates{}, fmt.Errorf("invalid pricing config: %w", err)
	}
	return r, nil
}

func validateRates(r Rates) error {
	if r.FlatDeliveryRate < 0 {
		return fmt.Errorf("flatDeliveryRate must not be negative")
	}
	if r.TaxRate < 0 || r.TaxRate >= 1 {
		return fmt.Errorf("taxRate must be in [0, 1)")
	}
	for code, rule := range r.DiscountCodes {
		if rule.Type != DiscountPercentage && rule.Type != DiscountFlatCap {
			return fmt.Errorf("discount code %s has unknown type %q", code, rule.Type)
		}
		if rule.Value < 0 {
			return fmt.Errorf("discount code %s has negative value", code)
		}
	}
	return nil
}

// ResolveDiscount maps a customer-supplied code to a monetary reduction of the
// given pre-discount amount. Unknown and empty codes resolve to zero; an
// unrecognized code is not an error.
func (r Rates) ResolveDiscount(amount float64, code string) float64 {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0
	}
	rule, ok := r.DiscountCodes[code]
	if !ok {
		return 0
	}
	switch rule.Type {
	case DiscountPercentage:
		return amount * rule.Value / 100
	case DiscountFlatCap:
		return math.Min(amount, rule.Value)
	default:
		return 0
	}
}
