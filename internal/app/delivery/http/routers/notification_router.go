package routers

import (
	"medcalc-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, notificationController *controllers.NotificationController) {
	router.Get("/", notificationController.FetchNotifications)
	router.Post("/{notification_id}/read", notificationController.MarkNotificationRead)
}

func attachPreferencesRoutes(router chi.Router, preferencesController *controllers.PreferencesController) {
	router.Get("/", preferencesController.GetPreferences)
	router.Put("/", preferencesController.UpdatePreferences)
}

func attachFormRoutes(router chi.Router, formController *controllers.FormController) {
	router.Post("/validate", formController.ValidateForm)
}
