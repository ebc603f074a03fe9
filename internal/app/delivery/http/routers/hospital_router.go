package routers

import (
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/services/core/hospitals"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, middlewares *middlewares.Middlewares, hospitalController *hospitals.HospitalController) {
	router.With(middlewares.Authenticate).Get("/profile", hospitalController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", hospitalController.UpdateProfile)
}
