package controllers

import (
	"medcalc-service/internal/app/services/core/questionnaires"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase questionnaires.QuestionnaireUsecase
}

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase questionnaires.QuestionnaireUsecase) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
	}
}

func (ctrl *QuestionnaireController) FindAvailableQuestionnaires(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.QuestionnaireUsecase.FindAvailableQuestionnaires(r.Context())
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionnairesSuccess, response)
}

func (ctrl *QuestionnaireController) StartQuestionnaire(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(chi.URLParam(r, constvars.URLParamQuestionnaireCode))
	if code == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamQuestionnaireCode))
		return
	}

	snapshot, err := ctrl.QuestionnaireUsecase.StartQuestionnaire(r.Context(), utils.GetSessionID(r.Context()), code)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionnaireLoaded, snapshot)
}

func (ctrl *QuestionnaireController) GetCurrentSession(w http.ResponseWriter, r *http.Request) {
	snapshot := ctrl.QuestionnaireUsecase.GetCurrentSession(r.Context(), utils.GetSessionID(r.Context()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionGetSuccess, snapshot)
}

func (ctrl *QuestionnaireController) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RecordAnswer)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	snapshot, err := ctrl.QuestionnaireUsecase.RecordAnswer(r.Context(), utils.GetSessionID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnswerRecordedSuccess, snapshot)
}

func (ctrl *QuestionnaireController) GoToPreviousQuestion(w http.ResponseWriter, r *http.Request) {
	snapshot, err := ctrl.QuestionnaireUsecase.GoToPreviousQuestion(r.Context(), utils.GetSessionID(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreviousQuestionOK, snapshot)
}

func (ctrl *QuestionnaireController) AbandonQuestionnaire(w http.ResponseWriter, r *http.Request) {
	snapshot := ctrl.QuestionnaireUsecase.AbandonQuestionnaire(r.Context(), utils.GetSessionID(r.Context()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionAbandonSuccess, snapshot)
}

func (ctrl *QuestionnaireController) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitQuestionnaire)
	if err := decodeBody(r, request, true); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.QuestionnaireUsecase.SubmitQuestionnaire(r.Context(), utils.GetSessionID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitSuccess, response)
}
