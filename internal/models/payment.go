package models

// Payment methods accepted at checkout.
const (
	PaymentEsewa          = "ESEWA"
	PaymentKhalti         = "KHALTI"
	PaymentCard           = "CARD"
	PaymentCashOnDelivery = "CASH_ON_DELIVERY"
)

// Online payment gateways enforce these bounds per transaction.
const (
	MinPaymentAmount = 1.0
	MaxPaymentAmount = 100000.0
)

var paymentMethodNames = map[string]string{
	PaymentEsewa:          "eSewa",
	PaymentKhalti:         "Khalti",
	PaymentCard:           "Credit/Debit Card",
	PaymentCashOnDelivery: "Cash on Delivery",
}

// DeliveryTimeSlots are the slots a customer may pick for drop-off.
var DeliveryTimeSlots = []string{"08:00", "12:00", "18:00", "20:00"}

// DefaultDeliveryTime is pre-selected on a fresh draft.
const DefaultDeliveryTime = "12:00"

func IsValidPaymentMethod(method string) bool {
	_, ok := paymentMethodNames[method]
	return ok
}

// PaymentMethodName returns the customer-facing name for a method code,
// falling back to the code itself for unknown values.
func PaymentMethodName(method string) string {
	if name, ok := paymentMethodNames[method]; ok {
		return name
	}
	return method
}

func IsValidDeliverySlot(slot string) bool {
	for _, s := range DeliveryTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsOnlinePayment reports whether the method settles through a gateway and is
// therefore subject to the payment amount bounds.
func IsOnlinePayment(method string) bool {
	return method == PaymentEsewa || method == PaymentKhalti || method == PaymentCard
}
