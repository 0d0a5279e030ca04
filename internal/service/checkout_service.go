package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tiffin-sathi/checkout-service/internal/concurrency"
	"github.com/tiffin-sathi/checkout-service/internal/models"
	"github.com/tiffin-sathi/checkout-service/internal/pricing"
)

// Collaborators required by the service (interfaces to allow mocking).

type PackageRepo interface {
	ListPackages(ctx context.Context) ([]models.MealPackage, bool, error)
	GetPackage(ctx context.Context, packageID int) (*models.MealPackage, error)
}

type DraftRepo interface {
	Create(draft models.SubscriptionDraft)
	Get(draftID string) (models.SubscriptionDraft, error)
	Update(draft models.SubscriptionDraft) error
	Delete(draftID string)
}

type SubscriptionSubmitter interface {
	CreateSubscription(ctx context.Context, submission models.SubscriptionSubmission) (*models.SubscriptionRecord, error)
}

var (
	ErrInvalidMealSet    = errors.New("meal set does not belong to the selected package")
	ErrInvalidTimeSlot   = errors.New("unknown delivery time slot")
	ErrInvalidPayment    = errors.New("unknown payment method")
	ErrSubmissionFailed  = errors.New("subscription submission failed")
	ErrPaymentOutOfRange = errors.New("payment amount out of range")
)

// DeliveryDetails is the delivery/checkout form state applied to a draft.
// Nil booleans keep the draft's current flags.
type DeliveryDetails struct {
	DeliveryAddress       string
	Landmark              string
	PreferredDeliveryTime string
	DietaryNotes          string
	SpecialInstructions   string
	IncludePackaging      *bool
	IncludeCutlery        *bool
	DiscountCode          string
	PaymentMethod         string
	StartDate             string
}

// CheckoutService owns the subscription checkout flow: draft lifecycle,
// schedule edits, pricing, and final assembly + submission.
type CheckoutService struct {
	packages PackageRepo
	drafts   DraftRepo
	backend  SubscriptionSubmitter
	calc     *pricing.Calculator
	// clock allows tests to pin "now" when deriving start dates
	clock func() time.Time
}

func NewCheckoutService(packages PackageRepo, drafts DraftRepo, backend SubscriptionSubmitter, calc *pricing.Calculator) *CheckoutService {
	return &CheckoutService{
		packages: packages,
		drafts:   drafts,
		backend:  backend,
		calc:     calc,
		clock:    time.Now,
	}
}

// ListPackages returns the catalog and whether it came from a degraded source.
func (s *CheckoutService) ListPackages(ctx context.Context) ([]models.MealPackage, bool, error) {
	return s.packages.ListPackages(ctx)
}

// StartDraft opens a checkout flow for a package. The start date defaults to
// the next Monday and the schedule to weekday deliveries.
func (s *CheckoutService) StartDraft(ctx context.Context, packageID int) (models.SubscriptionDraft, error) {
	if _, err := s.packages.GetPackage(ctx, packageID); err != nil {
		return models.SubscriptionDraft{}, err
	}

	now := s.clock()
	draft := models.NewSubscriptionDraft(uuid.NewString(), packageID, models.NextStartDate(now), now)
	s.drafts.Create(draft)
	return draft, nil
}

func (s *CheckoutService) GetDraft(draftID string) (models.SubscriptionDraft, error) {
	return s.drafts.Get(draftID)
}

// ToggleDay flips delivery enablement for one day of the draft's schedule.
func (s *CheckoutService) ToggleDay(draftID string, dayIndex int) (models.SubscriptionDraft, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return models.SubscriptionDraft{}, err
	}
	draft.Schedule = draft.Schedule.ToggleDay(dayIndex)
	if err := s.drafts.Update(draft); err != nil {
		return models.SubscriptionDraft{}, err
	}
	return draft, nil
}

// AddMeal appends a selection of setID to the given day. The set must belong
// to the draft's package.
func (s *CheckoutService) AddMeal(ctx context.Context, draftID string, dayIndex, setID int) (models.SubscriptionDraft, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return models.SubscriptionDraft{}, err
	}
	pkg, err := s.packages.GetPackage(ctx, draft.PackageID)
	if err != nil {
		return models.SubscriptionDraft{}, err
	}
	if !pkg.HasSet(setID) {
		return models.SubscriptionDraft{}, fmt.Errorf("%w: set %d", ErrInvalidMealSet, setID)
	}

	draft.Schedule = draft.Schedule.AddMeal(dayIndex, setID)
	if err := s.drafts.Update(draft); err != nil {
		return models.SubscriptionDraft{}, err
	}
	return draft, nil
}

// UpdateQuantity changes one meal line's quantity. Values below 1 are a no-op.
func (s *CheckoutService) UpdateQuantity(draftID string, dayIndex, mealIndex, quantity int) (models.SubscriptionDraft, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return models.SubscriptionDraft{}, err
	}
	draft.Schedule = draft.Schedule.UpdateQuantity(dayIndex, mealIndex, quantity)
	if err := s.drafts.Update(draft); err != nil {
		return models.SubscriptionDraft{}, err
	}
	return draft, nil
}

// RemoveMeal deletes one meal line; subsequent lines shift down.
func (s *CheckoutService) RemoveMeal(draftID string, dayIndex, mealIndex int) (models.SubscriptionDraft, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return models.SubscriptionDraft{}, err
	}
	draft.Schedule = draft.Schedule.RemoveMeal(dayIndex, mealIndex)
	if err := s.drafts.Update(draft); err != nil {
		return models.SubscriptionDraft{}, err
	}
	return draft, nil
}

// UpdateDelivery applies the delivery form state to a draft. Time slot and
// payment method are checked against their enumerations when supplied.
func (s *CheckoutService) UpdateDelivery(draftID string, details DeliveryDetails) (models.SubscriptionDraft, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return models.SubscriptionDraft{}, err
	}

	if details.PreferredDeliveryTime != "" {
		if !models.IsValidDeliverySlot(details.PreferredDeliveryTime) {
			return models.SubscriptionDraft{}, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, details.PreferredDeliveryTime)
		}
		draft.PreferredDeliveryTime = details.PreferredDeliveryTime
	}
	if details.PaymentMethod != "" {
		if !models.IsValidPaymentMethod(details.PaymentMethod) {
			return models.SubscriptionDraft{}, fmt.Errorf("%w: %s", ErrInvalidPayment, details.PaymentMethod)
		}
		draft.PaymentMethod = details.PaymentMethod
	}

	draft.DeliveryAddress = details.DeliveryAddress
	draft.Landmark = details.Landmark
	draft.DietaryNotes = details.DietaryNotes
	draft.SpecialInstructions = details.SpecialInstructions
	draft.DiscountCode = details.DiscountCode
	draft.StartDate = details.StartDate
	if details.IncludePackaging != nil {
		draft.IncludePackaging = *details.IncludePackaging
	}
	if details.IncludeCutlery != nil {
		draft.IncludeCutlery = *details.IncludeCutlery
	}

	if err := s.drafts.Update(draft); err != nil {
		return models.SubscriptionDraft{}, err
	}
	return draft, nil
}

// Price computes the current cost breakdown for a draft.
func (s *CheckoutService) Price(ctx context.Context, draftID string) (*models.PricingResult, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packages.GetPackage(ctx, draft.PackageID)
	if err != nil {
		return nil, err
	}
	return s.calc.Calculate(pkg, draft.Schedule, draft.DiscountCode), nil
}

// Checkout validates the draft, assembles the submission payload, sends it to
// the backend, and deletes the draft on success. The draft survives a failed
// submission so the customer can retry.
func (s *CheckoutService) Checkout(ctx context.Context, draftID string) (*models.SubscriptionRecord, *models.PricingResult, error) {
	draft, err := s.drafts.Get(draftID)
	if err != nil {
		return nil, nil, err
	}
	pkg, err := s.packages.GetPackage(ctx, draft.PackageID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.validateDraft(ctx, pkg, draft); err != nil {
		return nil, nil, err
	}

	result := s.calc.Calculate(pkg, draft.Schedule, draft.DiscountCode)
	if models.IsOnlinePayment(draft.PaymentMethod) {
		if result.GrandTotal < models.MinPaymentAmount || result.GrandTotal > models.MaxPaymentAmount {
			return nil, nil, fmt.Errorf("%w: %.2f", ErrPaymentOutOfRange, result.GrandTotal)
		}
	}

	submission := assemble(draft)
	record, err := s.backend.CreateSubscription(ctx, submission)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	s.drafts.Delete(draft.DraftID)
	return record, result, nil
}

// assemble mirrors the draft into the upstream submission payload.
func assemble(draft models.SubscriptionDraft) models.SubscriptionSubmission {
	return models.SubscriptionSubmission{
		PackageID:             draft.PackageID,
		Schedule:              draft.Schedule,
		DeliveryAddress:       draft.DeliveryAddress,
		Landmark:              draft.Landmark,
		PreferredDeliveryTime: draft.PreferredDeliveryTime,
		DietaryNotes:          draft.DietaryNotes,
		SpecialInstructions:   draft.SpecialInstructions,
		IncludePackaging:      draft.IncludePackaging,
		IncludeCutlery:        draft.IncludeCutlery,
		DiscountCode:          draft.DiscountCode,
		PaymentMethod:         draft.PaymentMethod,
		StartDate:             draft.StartDate,
	}
}

// validateDraft collects every problem blocking assembly into one
// ValidationError instead of failing on the first.
func (s *CheckoutService) validateDraft(ctx context.Context, pkg *models.MealPackage, draft models.SubscriptionDraft) error {
	var fields []string

	if strings.TrimSpace(draft.DeliveryAddress) == "" {
		fields = append(fields, "deliveryAddress")
	}

	if draft.StartDate == "" {
		fields = append(fields, "startDate")
	} else if start, err := time.Parse(models.StartDateLayout, draft.StartDate); err != nil {
		fields = append(fields, "startDate")
	} else {
		earliest, _ := time.Parse(models.StartDateLayout, models.NextStartDate(s.clock()))
		if start.Before(earliest) {
			fields = append(fields, "startDate")
		}
	}

	fields = append(fields, invalidScheduleRefs(ctx, pkg, draft.Schedule)...)

	if len(fields) > 0 {
		return &models.ValidationError{Fields: fields}
	}
	return nil
}

// invalidScheduleRefs checks the meal-set reference invariant for every
// enabled day, fanning the days out across workers.
func invalidScheduleRefs(ctx context.Context, pkg *models.MealPackage, schedule models.WeekSchedule) []string {
	var mu sync.Mutex
	var fields []string

	concurrency.FanOut(ctx, len(schedule), func(ctx context.Context, dayIdx int) {
		day := schedule[dayIdx]
		if !day.Enabled {
			return
		}
		for mealIdx, meal := range day.Meals {
			if pkg.HasSet(meal.SetID) {
				continue
			}
			mu.Lock()
			fields = append(fields, fmt.Sprintf("schedule[%d].meals[%d].setId", dayIdx, mealIdx))
			mu.Unlock()
		}
	})

	sort.Strings(fields)
	return fields
}
