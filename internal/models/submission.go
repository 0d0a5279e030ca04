package models

// SubscriptionSubmission is the exact payload POSTed to the upstream
// subscription-creation endpoint. Field names follow that endpoint's contract.
type SubscriptionSubmission struct {
	PackageID             int          `json:"packageId"`
	Schedule              WeekSchedule `json:"schedule"`
	DeliveryAddress       string       `json:"deliveryAddress"`
	Landmark              string       `json:"landmark,omitempty"`
	PreferredDeliveryTime string       `json:"preferredDeliveryTime"`
	DietaryNotes          string       `json:"dietaryNotes,omitempty"`
	SpecialInstructions   string       `json:"specialInstructions,omitempty"`
	IncludePackaging      bool         `json:"includePackaging"`
	IncludeCutlery        bool         `json:"includeCutlery"`
	DiscountCode          string       `json:"discountCode,omitempty"`
	PaymentMethod         string       `json:"paymentMethod"`
	StartDate             string       `json:"startDate"`
}

// SubscriptionRecord is what the upstream endpoint returns for a created
// subscription. The checkout flow only relays it to the caller.
type SubscriptionRecord struct {
	SubscriptionID        int    `json:"subscriptionId"`
	Status                string `json:"status"`
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	DeliveryAddress       string `json:"deliveryAddress"`
	PreferredDeliveryTime string `json:"preferredDeliveryTime"`
}
