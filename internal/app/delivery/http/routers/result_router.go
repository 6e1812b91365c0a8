package routers

import (
	"medcalc-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachResultRoutes(router chi.Router, resultController *controllers.ResultController) {
	router.Get("/history", resultController.FetchHistory)
	router.Get("/{result_id}", resultController.FetchResultDetail)
	router.Post("/{result_id}/request-interpretation", resultController.RequestInterpretation)
	router.Post("/{result_id}/share", resultController.ShareResult)
}
