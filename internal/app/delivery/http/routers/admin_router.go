package routers

import (
	"medcalc-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, adminController *controllers.AdminController) {
	router.Get("/results/pending", adminController.FetchPendingResults)
	router.Post("/results/{result_id}/interpret", adminController.InterpretResult)
	router.Get("/users", adminController.FetchUsers)
	router.Put("/users/{user_id}/status", adminController.ToggleUserStatus)
	router.Get("/statistics", adminController.FetchStatistics)
	router.Get("/statistics/detailed", adminController.FetchDetailedStatistics)
}
