package controllers

import (
	"medcalc-service/internal/app/services/core/preferences"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PreferencesController struct {
	Log                *zap.Logger
	PreferencesUsecase preferences.PreferencesUsecase
}

func NewPreferencesController(logger *zap.Logger, preferencesUsecase preferences.PreferencesUsecase) *PreferencesController {
	return &PreferencesController{
		Log:                logger,
		PreferencesUsecase: preferencesUsecase,
	}
}

func sessionUserID(r *http.Request) (string, error) {
	session := utils.GetSessionData(r.Context())
	if session == nil || session.UserID == "" {
		return "", exceptions.ErrSessionNotFound(utils.GetSessionID(r.Context()))
	}
	return session.UserID, nil
}

func (ctrl *PreferencesController) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PreferencesUsecase.GetPreferences(r.Context(), userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreferencesGetSuccess, response)
}

func (ctrl *PreferencesController) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := sessionUserID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdatePreferences)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.PreferencesUsecase.UpdatePreferences(r.Context(), userID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreferencesSetSuccess, response)
}
