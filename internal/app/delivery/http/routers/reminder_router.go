package routers

import (
	"healthtrack-service/internal/app/delivery/http/middlewares"
	"healthtrack-service/internal/app/services/core/reminders"

	"github.com/go-chi/chi/v5"
)

func attachReminderRoutes(router chi.Router, middlewares *middlewares.Middlewares, reminderController *reminders.ReminderController) {
	router.With(middlewares.Authenticate).Post("/email", reminderController.SendReminderEmail)
}
