package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tiffin-sathi/checkout-service/internal/api/handlers"
	"github.com/tiffin-sathi/checkout-service/internal/service"
)

// NewRouter builds the HTTP router for the checkout-service
func NewRouter(svc *service.CheckoutService) http.Handler {
	r := chi.NewRouter()

	checkoutHandler := handlers.NewCheckoutHandler(svc)

	// Catalog
	r.Get("/packages", checkoutHandler.ListPackages)

	// Checkout drafts
	r.Route("/drafts", func(r chi.Router) {
		r.Post("/", checkoutHandler.CreateDraft)
		r.Route("/{draftID}", func(r chi.Router) {
			r.Get("/", checkoutHandler.GetDraft)
			r.Post("/schedule/toggle", checkoutHandler.ToggleDay)
			r.Post("/schedule/meals", checkoutHandler.AddMeal)
			r.Post("/schedule/quantity", checkoutHandler.UpdateQuantity)
			r.Post("/schedule/remove", checkoutHandler.RemoveMeal)
			r.Post("/delivery", checkoutHandler.UpdateDelivery)
			r.Get("/pricing", checkoutHandler.GetPricing)
			r.Post("/checkout", checkoutHandler.Checkout)
		})
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
