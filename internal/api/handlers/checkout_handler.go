package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tiffin-sathi/checkout-service/internal/models"
	"github.com/tiffin-sathi/checkout-service/internal/repository"
	"github.com/tiffin-sathi/checkout-service/internal/service"
	"github.com/tiffin-sathi/checkout-service/pkg/money"
)

// --- Request / Response DTOs ---

type CreateDraftRequest struct {
	PackageID int `json:"package_id"`
}

type ToggleDayRequest struct {
	DayIndex int `json:"day_index"`
}

type AddMealRequest struct {
	DayIndex int `json:"day_index"`
	SetID    int `json:"set_id"`
}

type QuantityRequest struct {
	DayIndex  int `json:"day_index"`
	MealIndex int `json:"meal_index"`
	Quantity  int `json:"quantity"`
}

type RemoveMealRequest struct {
	DayIndex  int `json:"day_index"`
	MealIndex int `json:"meal_index"`
}

type DeliveryRequest struct {
	DeliveryAddress       string `json:"delivery_address"`
	Landmark              string `json:"landmark"`
	PreferredDeliveryTime string `json:"preferred_delivery_time"`
	DietaryNotes          string `json:"dietary_notes"`
	SpecialInstructions   string `json:"special_instructions"`
	IncludePackaging      *bool  `json:"include_packaging"`
	IncludeCutlery        *bool  `json:"include_cutlery"`
	DiscountCode          string `json:"discount_code"`
	PaymentMethod         string `json:"payment_method"`
	StartDate             string `json:"start_date"`
}

type PackagesResponse struct {
	Packages []models.MealPackage `json:"packages"`
	Degraded bool                 `json:"degraded"`
}

type PricingResponse struct {
	Pricing *models.PricingResult `json:"pricing"`
	Display map[string]string     `json:"display"`
}

type CheckoutResponse struct {
	Message           string                     `json:"message"`
	Subscription      *models.SubscriptionRecord `json:"subscription"`
	Pricing           *models.PricingResult      `json:"pricing"`
	PaymentMethodName string                     `json:"payment_method_name"`
}

// --- Handler struct & constructor ---

type CheckoutHandler struct {
	service *service.CheckoutService
}

func NewCheckoutHandler(svc *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, reason string) {
	writeJSON(w, code, map[string]string{"error": reason})
}

// writeServiceError maps service/repository errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation_failed",
			"fields": vErr.Fields,
		})
	case errors.Is(err, repository.ErrDraftNotFound):
		writeError(w, http.StatusNotFound, "draft_not_found")
	case errors.Is(err, repository.ErrPackageNotFound):
		writeError(w, http.StatusNotFound, "package_not_found")
	case errors.Is(err, service.ErrInvalidMealSet):
		writeError(w, http.StatusBadRequest, "meal_set_not_in_package")
	case errors.Is(err, service.ErrInvalidTimeSlot):
		writeError(w, http.StatusBadRequest, "invalid_delivery_time")
	case errors.Is(err, service.ErrInvalidPayment):
		writeError(w, http.StatusBadRequest, "invalid_payment_method")
	case errors.Is(err, service.ErrPaymentOutOfRange):
		writeError(w, http.StatusBadRequest, "payment_amount_out_of_range")
	case errors.Is(err, service.ErrSubmissionFailed):
		writeError(w, http.StatusBadGateway, "subscription_submit_failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

func pricingDisplay(result *models.PricingResult) map[string]string {
	return map[string]string{
		"subtotal":     money.FormatRs(result.Subtotal),
		"delivery_fee": money.FormatRs(result.DeliveryFee),
		"tax":          money.FormatRs(result.Tax),
		"discount":     money.FormatRs(result.Discount),
		"grand_total":  money.FormatRs(result.GrandTotal),
	}
}

// --- Handlers ---

// ListPackages handles GET /packages
func (h *CheckoutHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, degraded, err := h.service.ListPackages(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "packages_unavailable")
		return
	}
	writeJSON(w, http.StatusOK, PackagesResponse{Packages: packages, Degraded: degraded})
}

// CreateDraft handles POST /drafts
func (h *CheckoutHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	draft, err := h.service.StartDraft(r.Context(), req.PackageID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, draft)
}

// GetDraft handles GET /drafts/{draftID}
func (h *CheckoutHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.GetDraft(chi.URLParam(r, "draftID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// ToggleDay handles POST /drafts/{draftID}/schedule/toggle
func (h *CheckoutHandler) ToggleDay(w http.ResponseWriter, r *http.Request) {
	var req ToggleDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	draft, err := h.service.ToggleDay(chi.URLParam(r, "draftID"), req.DayIndex)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// AddMeal handles POST /drafts/{draftID}/schedule/meals
func (h *CheckoutHandler) AddMeal(w http.ResponseWriter, r *http.Request) {
	var req AddMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	draft, err := h.service.AddMeal(r.Context(), chi.URLParam(r, "draftID"), req.DayIndex, req.SetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// UpdateQuantity handles POST /drafts/{draftID}/schedule/quantity
func (h *CheckoutHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req QuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	draft, err := h.service.UpdateQuantity(chi.URLParam(r, "draftID"), req.DayIndex, req.MealIndex, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// RemoveMeal handles POST /drafts/{draftID}/schedule/remove
func (h *CheckoutHandler) RemoveMeal(w http.ResponseWriter, r *http.Request) {
	var req RemoveMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	draft, err := h.service.RemoveMeal(chi.URLParam(r, "draftID"), req.DayIndex, req.MealIndex)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// UpdateDelivery handles POST /drafts/{draftID}/delivery
func (h *CheckoutHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	var req DeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	draft, err := h.service.UpdateDelivery(chi.URLParam(r, "draftID"), service.DeliveryDetails{
		DeliveryAddress:       req.DeliveryAddress,
		Landmark:              req.Landmark,
		PreferredDeliveryTime: req.PreferredDeliveryTime,
		DietaryNotes:          req.DietaryNotes,
		SpecialInstructions:   req.SpecialInstructions,
		IncludePackaging:      req.IncludePackaging,
		IncludeCutlery:        req.IncludeCutlery,
		DiscountCode:          req.DiscountCode,
		PaymentMethod:         req.PaymentMethod,
		StartDate:             req.StartDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// GetPricing handles GET /drafts/{draftID}/pricing
func (h *CheckoutHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Price(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PricingResponse{
		Pricing: result,
		Display: pricingDisplay(result),
	})
}

// Checkout handles POST /drafts/{draftID}/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, "draftID")
	draft, err := h.service.GetDraft(draftID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	record, result, err := h.service.Checkout(r.Context(), draftID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CheckoutResponse{
		Message:           "subscription_created",
		Subscription:      record,
		Pricing:           result,
		PaymentMethodName: models.PaymentMethodName(draft.PaymentMethod),
	})
}
