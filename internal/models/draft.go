package models

import "time"

// StartDateLayout is the wire format for subscription start dates.
const StartDateLayout = "2006-01-02"

// SubscriptionDraft is the mutable working state of a checkout flow. It is
// created when a package is selected and deleted once checkout succeeds.
type SubscriptionDraft struct {
	DraftID               string       `json:"draftId"`
	PackageID             int          `json:"packageId"`
	Schedule              WeekSchedule `json:"schedule"`
	DeliveryAddress       string       `json:"deliveryAddress"`
	Landmark              string       `json:"landmark"`
	PreferredDeliveryTime string       `json:"preferredDeliveryTime"`
	DietaryNotes          string       `json:"dietaryNotes"`
	SpecialInstructions   string       `json:"specialInstructions"`
	IncludePackaging      bool         `json:"includePackaging"`
	IncludeCutlery        bool         `json:"includeCutlery"`
	DiscountCode          string       `json:"discountCode"`
	PaymentMethod         string       `json:"paymentMethod"`
	StartDate             string       `json:"startDate"` // YYYY-MM-DD
	CreatedAt             time.Time    `json:"createdAt"`
}

// NewSubscriptionDraft builds a draft with the standard defaults: weekday
// schedule, packaging included, eSewa pre-selected, noon delivery.
func NewSubscriptionDraft(draftID string, packageID int, startDate string, now time.Time) SubscriptionDraft {
	return SubscriptionDraft{
		DraftID:               draftID,
		PackageID:             packageID,
		Schedule:              NewWeekSchedule(),
		PreferredDeliveryTime: DefaultDeliveryTime,
		IncludePackaging:      true,
		PaymentMethod:         PaymentEsewa,
		StartDate:             startDate,
		CreatedAt:             now,
	}
}

// NextStartDate returns the earliest date a new subscription may begin: the
// next Monday strictly after now.
func NextStartDate(now time.Time) string {
	days := (int(time.Monday) + 7 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days).Format(StartDateLayout)
}
