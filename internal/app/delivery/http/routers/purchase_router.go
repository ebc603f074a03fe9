package routers

import (
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/services/core/purchases"
	"healthtrack-service/internal/app/services/core/reminders"

	"github.com/go-chi/chi/v5"
)

func attachPurchaseRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	purchaseController *purchases.PurchaseController,
	reminderController *reminders.ReminderController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", purchaseController.CreatePurchase)
	router.Get("/", purchaseController.GetPurchases)
	router.Get("/totals", purchaseController.GetPurchaseTotals)
	router.Get("/{purchaseID}", purchaseController.GetPurchaseByID)
	router.Get("/{purchaseID}/calendar", reminderController.DownloadCalendar)
}
