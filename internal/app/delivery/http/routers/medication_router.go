package routers

import (
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/services/core/medications"

	"github.com/go-chi/chi/v5"
)

func attachMedicationRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicationController *medications.MedicationController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", medicationController.CreateMedication)
	router.Get("/", medicationController.GetMedications)
	router.Get("/search", medicationController.SearchMedications)
	router.Get("/low-stock", medicationController.GetLowStockMedications)
	router.Get("/inventory-report", medicationController.GetInventoryReport)
	router.Get("/{medicationID}", medicationController.GetMedicationByID)
	router.Put("/{medicationID}", medicationController.UpdateMedication)
	router.Delete("/{medicationID}", medicationController.DeleteMedication)
}
