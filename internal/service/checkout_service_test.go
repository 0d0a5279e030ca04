package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tiffin-sathi/checkout-service/internal/models"
	"github.com/tiffin-sathi/checkout-service/internal/pricing"
	"github.com/tiffin-sathi/checkout-service/internal/repository"
)

// --- Mocks ---

type mockPackageRepo struct {
	packages []models.MealPackage
}

func (m *mockPackageRepo) ListPackages(ctx context.Context) ([]models.MealPackage, bool, error) {
	return m.packages, false, nil
}

func (m *mockPackageRepo) GetPackage(ctx context.Context, packageID int) (*models.MealPackage, error) {
	for i := range m.packages {
		if m.packages[i].PackageID == packageID {
			return &m.packages[i], nil
		}
	}
	return nil, repository.ErrPackageNotFound
}

type mockSubmitter struct {
	submissions []models.SubscriptionSubmission
	record      *models.SubscriptionRecord
	err         error
}

func (m *mockSubmitter) CreateSubscription(ctx context.Context, submission models.SubscriptionSubmission) (*models.SubscriptionRecord, error) {
	m.submissions = append(m.submissions, submission)
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

// --- Fixtures ---

// Wednesday; the next start date is Monday 2026-01-12.
var testNow = time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)

func vegPackage() models.MealPackage {
	return models.MealPackage{
		PackageID:    1,
		Name:         "Standard Veg",
		PricePerSet:  250,
		DurationDays: 30,
		PackageSets: []models.MealSet{
			{SetID: 1, SetName: "Rice Set", Type: "VEG"},
			{SetID: 2, SetName: "Roti Set", Type: "VEG"},
		},
	}
}

func newTestService(submitter *mockSubmitter) *CheckoutService {
	svc := NewCheckoutService(
		&mockPackageRepo{packages: []models.MealPackage{vegPackage()}},
		repository.NewDraftRepo(),
		submitter,
		pricing.NewCalculator(pricing.DefaultRates()),
	)
	svc.clock = func() time.Time { return testNow }
	return svc
}

// --- Tests ---

func TestStartDraftDefaults(t *testing.T) {
	svc := newTestService(&mockSubmitter{})

	draft, err := svc.StartDraft(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected draft, got %v", err)
	}
	if draft.DraftID == "" {
		t.Error("expected a generated draft id")
	}
	if draft.StartDate != "2026-01-12" {
		t.Errorf("expected next Monday 2026-01-12, got %s", draft.StartDate)
	}
	if draft.PaymentMethod != models.PaymentEsewa {
		t.Errorf("expected default payment, got %s", draft.PaymentMethod)
	}

	if _, err := svc.StartDraft(context.Background(), 42); !errors.Is(err, repository.ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestAddMealEnforcesPackageMembership(t *testing.T) {
	svc := newTestService(&mockSubmitter{})
	draft, _ := svc.StartDraft(context.Background(), 1)

	updated, err := svc.AddMeal(context.Background(), draft.DraftID, 0, 2)
	if err != nil {
		t.Fatalf("expected meal added, got %v", err)
	}
	if len(updated.Schedule[0].Meals) != 1 {
		t.Fatalf("expected 1 meal, got %d", len(updated.Schedule[0].Meals))
	}

	if _, err := svc.AddMeal(context.Background(), draft.DraftID, 0, 99); !errors.Is(err, ErrInvalidMealSet) {
		t.Errorf("expected ErrInvalidMealSet for foreign set, got %v", err)
	}
}

func TestUpdateDeliveryValidatesEnums(t *testing.T) {
	svc := newTestService(&mockSubmitter{})
	draft, _ := svc.StartDraft(context.Background(), 1)

	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{PreferredDeliveryTime: "03:00"}); !errors.Is(err, ErrInvalidTimeSlot) {
		t.Errorf("expected ErrInvalidTimeSlot, got %v", err)
	}
	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{PaymentMethod: "BITCOIN"}); !errors.Is(err, ErrInvalidPayment) {
		t.Errorf("expected ErrInvalidPayment, got %v", err)
	}

	cutlery := true
	updated, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{
		DeliveryAddress:       "123 Main Street, Kathmandu 44600",
		PreferredDeliveryTime: "18:00",
		PaymentMethod:         models.PaymentKhalti,
		DiscountCode:          "SAVE10",
		StartDate:             "2026-01-12",
		IncludeCutlery:        &cutlery,
	})
	if err != nil {
		t.Fatalf("expected update, got %v", err)
	}
	if updated.PreferredDeliveryTime != "18:00" || updated.PaymentMethod != models.PaymentKhalti {
		t.Errorf("delivery details not applied: %+v", updated)
	}
	if !updated.IncludeCutlery {
		t.Error("cutlery flag not applied")
	}
	if !updated.IncludePackaging {
		t.Error("unset packaging flag must keep its prior value")
	}
}

func TestCheckoutValidationCollectsAllFields(t *testing.T) {
	svc := newTestService(&mockSubmitter{})
	draft, _ := svc.StartDraft(context.Background(), 1)

	// wipe both required fields
	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{DeliveryAddress: "", StartDate: ""}); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Checkout(context.Background(), draft.DraftID)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 2 || vErr.Fields[0] != "deliveryAddress" || vErr.Fields[1] != "startDate" {
		t.Errorf("expected [deliveryAddress startDate], got %v", vErr.Fields)
	}
}

func TestCheckoutRejectsEarlyStartDate(t *testing.T) {
	svc := newTestService(&mockSubmitter{})
	draft, _ := svc.StartDraft(context.Background(), 1)

	// 2026-01-08 is before the next available Monday
	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{
		DeliveryAddress: "123 Main Street",
		StartDate:       "2026-01-08",
	}); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Checkout(context.Background(), draft.DraftID)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0] != "startDate" {
		t.Errorf("expected [startDate], got %v", vErr.Fields)
	}
}

func TestCheckoutHappyPath(t *testing.T) {
	submitter := &mockSubmitter{
		record: &models.SubscriptionRecord{SubscriptionID: 501, Status: "ACTIVE", StartDate: "2026-01-12"},
	}
	svc := newTestService(submitter)

	draft, _ := svc.StartDraft(context.Background(), 1)
	if _, err := svc.AddMeal(context.Background(), draft.DraftID, 0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{
		DeliveryAddress: "123 Main Street, Kathmandu 44600",
		Landmark:        "Near city mall",
		DiscountCode:    "SAVE10",
		PaymentMethod:   models.PaymentCashOnDelivery,
		StartDate:       "2026-01-12",
	}); err != nil {
		t.Fatal(err)
	}

	record, result, err := svc.Checkout(context.Background(), draft.DraftID)
	if err != nil {
		t.Fatalf("expected checkout to succeed, got %v", err)
	}
	if record.SubscriptionID != 501 {
		t.Errorf("expected subscription 501, got %d", record.SubscriptionID)
	}
	if result == nil || result.GrandTotal <= 0 {
		t.Errorf("expected a positive grand total, got %+v", result)
	}

	// the submission mirrors the draft
	if len(submitter.submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(submitter.submissions))
	}
	sub := submitter.submissions[0]
	if sub.PackageID != 1 || sub.DeliveryAddress != "123 Main Street, Kathmandu 44600" ||
		sub.Landmark != "Near city mall" || sub.DiscountCode != "SAVE10" ||
		sub.PaymentMethod != models.PaymentCashOnDelivery || sub.StartDate != "2026-01-12" {
		t.Errorf("submission does not mirror the draft: %+v", sub)
	}
	if len(sub.Schedule[0].Meals) != 1 || sub.Schedule[0].Meals[0].SetID != 1 {
		t.Errorf("schedule missing from submission: %+v", sub.Schedule[0])
	}

	// draft removed after success
	if _, err := svc.GetDraft(draft.DraftID); !errors.Is(err, repository.ErrDraftNotFound) {
		t.Errorf("expected draft deleted after checkout, got %v", err)
	}
}

func TestCheckoutKeepsDraftOnBackendFailure(t *testing.T) {
	submitter := &mockSubmitter{err: errors.New("upstream 500")}
	svc := newTestService(submitter)

	draft, _ := svc.StartDraft(context.Background(), 1)
	if _, err := svc.AddMeal(context.Background(), draft.DraftID, 0, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{
		DeliveryAddress: "123 Main Street",
		PaymentMethod:   models.PaymentCashOnDelivery,
		StartDate:       "2026-01-12",
	}); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Checkout(context.Background(), draft.DraftID); !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}

	// the customer can retry: the draft survives
	if _, err := svc.GetDraft(draft.DraftID); err != nil {
		t.Errorf("expected draft kept after failed submission, got %v", err)
	}
}

func TestCheckoutPaymentBounds(t *testing.T) {
	svc := newTestService(&mockSubmitter{record: &models.SubscriptionRecord{SubscriptionID: 1}})

	// no deliveries at all: total is 0, below the online gateway minimum
	draft, _ := svc.StartDraft(context.Background(), 1)
	for i := 0; i < 5; i++ {
		if _, err := svc.ToggleDay(draft.DraftID, i); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{
		DeliveryAddress: "123 Main Street",
		PaymentMethod:   models.PaymentEsewa,
		StartDate:       "2026-01-12",
	}); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Checkout(context.Background(), draft.DraftID); !errors.Is(err, ErrPaymentOutOfRange) {
		t.Fatalf("expected ErrPaymentOutOfRange for zero total via eSewa, got %v", err)
	}

	// cash on delivery has no gateway bounds
	if _, err := svc.UpdateDelivery(draft.DraftID, DeliveryDetails{
		DeliveryAddress: "123 Main Street",
		PaymentMethod:   models.PaymentCashOnDelivery,
		StartDate:       "2026-01-12",
	}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Checkout(context.Background(), draft.DraftID); err != nil {
		t.Fatalf("expected cash-on-delivery checkout to pass, got %v", err)
	}
}

func TestCheckoutReportsForeignScheduleRefs(t *testing.T) {
	svc := newTestService(&mockSubmitter{})

	draft, _ := svc.StartDraft(context.Background(), 1)
	// corrupt the schedule behind the service's back, as a stale client might
	draft.Schedule = draft.Schedule.AddMeal(0, 1)
	draft.Schedule[0].Meals[0].SetID = 77
	draft.DeliveryAddress = "123 Main Street"
	draft.StartDate = "2026-01-12"
	draft.PaymentMethod = models.PaymentCashOnDelivery
	if err := svc.drafts.Update(draft); err != nil {
		t.Fatal(err)
	}

	_, _, err := svc.Checkout(context.Background(), draft.DraftID)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0] != "schedule[0].meals[0].setId" {
		t.Errorf("expected the bad schedule reference flagged, got %v", vErr.Fields)
	}
}
