package models

import (
	"testing"
	"time"
)

func TestNextStartDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"FromWednesday", time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC), "2026-01-12"},
		{"FromSunday", time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC), "2026-01-12"},
		// already Monday: the next start is a full week out, never today
		{"FromMonday", time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC), "2026-01-19"},
		{"FromSaturday", time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC), "2026-01-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStartDate(tt.now); got != tt.want {
				t.Errorf("NextStartDate(%s) = %s, want %s", tt.now.Format(StartDateLayout), got, tt.want)
			}
		})
	}
}

func TestNewSubscriptionDraft(t *testing.T) {
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	draft := NewSubscriptionDraft("d-1", 2, "2026-01-12", now)

	if draft.DraftID != "d-1" || draft.PackageID != 2 {
		t.Errorf("unexpected identity fields: %+v", draft)
	}
	if draft.PreferredDeliveryTime != DefaultDeliveryTime {
		t.Errorf("expected default delivery time %s, got %s", DefaultDeliveryTime, draft.PreferredDeliveryTime)
	}
	if !draft.IncludePackaging || draft.IncludeCutlery {
		t.Errorf("expected packaging on and cutlery off, got %v/%v", draft.IncludePackaging, draft.IncludeCutlery)
	}
	if draft.PaymentMethod != PaymentEsewa {
		t.Errorf("expected default payment %s, got %s", PaymentEsewa, draft.PaymentMethod)
	}
	if draft.StartDate != "2026-01-12" {
		t.Errorf("expected start date 2026-01-12, got %s", draft.StartDate)
	}
	if !draft.Schedule[0].Enabled || draft.Schedule[6].Enabled {
		t.Error("expected default weekday schedule")
	}
}

func TestPaymentMethodName(t *testing.T) {
	if got := PaymentMethodName(PaymentCashOnDelivery); got != "Cash on Delivery" {
		t.Errorf("expected 'Cash on Delivery', got %q", got)
	}
	if got := PaymentMethodName("BITCOIN"); got != "BITCOIN" {
		t.Errorf("unknown method should echo the code, got %q", got)
	}
}

func TestIsValidDeliverySlot(t *testing.T) {
	for _, slot := range DeliveryTimeSlots {
		if !IsValidDeliverySlot(slot) {
			t.Errorf("slot %s should be valid", slot)
		}
	}
	if IsValidDeliverySlot("03:00") {
		t.Error("03:00 should not be a valid slot")
	}
}
