package controllers

import (
	"medcalc-service/internal/app/services/core/auth"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase auth.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase auth.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeLoginRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Register)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeRegisterRequest(request)

	if err := utils.ValidateRegisterRequest(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.AuthUsecase.Register(r.Context(), request); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, nil)
}

func (ctrl *AuthController) CheckAuthState(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.AuthUsecase.CheckAuthState(r.Context(), utils.GetSessionID(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionGetSuccess, response)
}

func (ctrl *AuthController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := ctrl.AuthUsecase.GetProfile(r.Context(), utils.GetSessionID(r.Context()))
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, user)
}

func (ctrl *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateProfile)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeUpdateProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	user, err := ctrl.AuthUsecase.UpdateProfile(r.Context(), utils.GetSessionID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdateSuccess, user)
}

func (ctrl *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChangePassword)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.AuthUsecase.ChangePassword(r.Context(), request); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PasswordChangeSuccess, nil)
}

func (ctrl *AuthController) LinkTelegram(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LinkTelegram)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.SanitizeLinkTelegramRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	user, err := ctrl.AuthUsecase.LinkTelegram(r.Context(), utils.GetSessionID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TelegramLinkSuccess, user)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.AuthUsecase.Logout(r.Context(), utils.GetSessionID(r.Context())); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}
