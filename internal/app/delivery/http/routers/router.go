package routers

import (
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/services/core/auth"
	"healthtrack-service/internal/app/services/core/hospitals"
	"healthtrack-service/internal/app/services/core/medications"
	"healthtrack-service/internal/app/services/core/patients"
	"healthtrack-service/internal/app/services/core/purchases"
	"healthtrack-service/internal/app/services/core/reminders"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	hospitalController *hospitals.HospitalController,
	patientController *patients.PatientController,
	medicationController *medications.MedicationController,
	purchaseController *purchases.PurchaseController,
	reminderController *reminders.ReminderController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/hospitals", func(r chi.Router) {
			attachHospitalRoutes(r, middlewares, hospitalController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController, purchaseController)
		})

		r.Route("/medications", func(r chi.Router) {
			attachMedicationRoutes(r, middlewares, medicationController)
		})

		r.Route("/purchases", func(r chi.Router) {
			attachPurchaseRoutes(r, middlewares, purchaseController, reminderController)
		})

		r.Route("/reminders", func(r chi.Router) {
			attachReminderRoutes(r, middlewares, reminderController)
		})
	})
}
