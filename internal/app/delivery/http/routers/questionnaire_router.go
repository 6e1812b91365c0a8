package routers

import (
	"medcalc-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, questionnaireController *controllers.QuestionnaireController) {
	router.Get("/", questionnaireController.FindAvailableQuestionnaires)
	router.Get("/session", questionnaireController.GetCurrentSession)
	router.Delete("/session", questionnaireController.AbandonQuestionnaire)
	router.Post("/session/answers", questionnaireController.RecordAnswer)
	router.Post("/session/previous", questionnaireController.GoToPreviousQuestion)
	router.Post("/session/submit", questionnaireController.SubmitQuestionnaire)
	router.Post("/{questionnaire_code}/session", questionnaireController.StartQuestionnaire)
}
