package routers

import (
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.Post("/refresh", authController.Refresh)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
