package routers

import (
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/services/core/patients"
	"healthtrack-service/internal/app/services/core/purchases"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	purchaseController *purchases.PurchaseController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.GetPatients)
	router.Get("/{patientID}", patientController.GetPatientByID)
	router.Put("/{patientID}", patientController.UpdatePatient)
	router.Delete("/{patientID}", patientController.DeletePatient)
	router.Get("/{patientID}/purchases", purchaseController.GetPurchasesByPatientID)
}
