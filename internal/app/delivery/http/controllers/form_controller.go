package controllers

import (
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/dto/responses"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// FormController checks form values against declared rules so every client
// shows the same messages.
type FormController struct {
	Log *zap.Logger
}

func NewFormController(logger *zap.Logger) *FormController {
	return &FormController{Log: logger}
}

func (ctrl *FormController) ValidateForm(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ValidateForm)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	errs := utils.GetValidationErrors(request.Fields, request.Values)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FormValidated, responses.FormValidation{
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}
