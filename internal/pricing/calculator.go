package pricing

import (
	"github.com/tiffin-sathi/checkout-service/internal/models"
)

// Calculator derives a PricingResult from a package, a weekly schedule, and an
// optional discount code. It is pure: identical inputs always produce the
// identical result.
type Calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Calculate prices one week of the schedule, scales it across the package
// duration, then applies delivery fee, discount, and tax in that order.
// Returns nil when no package is selected.
//
// The weekly plan is assumed to repeat identically for every week of the
// package, including partial trailing weeks (durationDays/7 is not rounded).
func (c *Calculator) Calculate(pkg *models.MealPackage, schedule models.WeekSchedule, discountCode string) *models.PricingResult {
	if pkg == nil {
		return nil
	}

	subtotal := 0.0
	deliveryDaysPerWeek := 0
	for _, day := range schedule {
		if !day.Enabled {
			continue
		}
		deliveryDaysPerWeek++
		for _, meal := range day.Meals {
			if !pkg.HasSet(meal.SetID) {
				continue
			}
			subtotal += pkg.PricePerSet * float64(meal.Quantity)
		}
	}

	durationWeeks := float64(pkg.DurationDays) / 7
	subtotal = subtotal * durationWeeks
	deliveryFee := c.rates.FlatDeliveryRate * float64(deliveryDaysPerWeek) * durationWeeks

	discount := c.rates.ResolveDiscount(subtotal+deliveryFee, discountCode)
	taxableAmount := subtotal + deliveryFee - discount
	tax := taxableAmount * c.rates.TaxRate
	grandTotal := subtotal + deliveryFee + tax - discount

	return &models.PricingResult{
		Subtotal:            subtotal,
		DeliveryFee:         deliveryFee,
		Tax:                 tax,
		Discount:            discount,
		GrandTotal:          grandTotal,
		DeliveryDaysPerWeek: deliveryDaysPerWeek,
	}
}
