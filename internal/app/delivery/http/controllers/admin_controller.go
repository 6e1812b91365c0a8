package controllers

import (
	"medcalc-service/internal/app/services/core/admin"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase admin.AdminUsecase
}

func NewAdminController(logger *zap.Logger, adminUsecase admin.AdminUsecase) *AdminController {
	return &AdminController{
		Log:          logger,
		AdminUsecase: adminUsecase,
	}
}

func (ctrl *AdminController) FetchPendingResults(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r, constvars.DefaultPendingPageSize)

	page, err := ctrl.AdminUsecase.FetchPendingResults(r.Context(), utils.GetSessionID(r.Context()), pagination.Page, pagination.PageSize)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PendingResultsSuccess, paginationOf(r, page), page)
}

func (ctrl *AdminController) InterpretResult(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, constvars.URLParamResultID)
	if resultID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamResultID))
		return
	}

	request := new(requests.InterpretResult)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err := ctrl.AdminUsecase.InterpretResult(r.Context(), utils.GetSessionID(r.Context()), resultID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InterpretResultSuccess, nil)
}

func (ctrl *AdminController) FetchUsers(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r, constvars.DefaultUsersPageSize)
	request := &requests.FindUsers{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Search:   strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamSearch)),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrQueryParamValidation(err, constvars.URLQueryParamSearch))
		return
	}

	page, err := ctrl.AdminUsecase.FetchUsers(r.Context(), utils.GetSessionID(r.Context()), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.UsersSuccess, paginationOf(r, page), page)
}

func (ctrl *AdminController) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, constvars.URLParamUserID)
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamUserID))
		return
	}

	request := new(requests.UpdateUserStatus)
	if err := decodeBody(r, request, false); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	err := ctrl.AdminUsecase.ToggleUserStatus(r.Context(), utils.GetSessionID(r.Context()), userID, *request.IsActive)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserStatusSuccess, nil)
}

func (ctrl *AdminController) FetchStatistics(w http.ResponseWriter, r *http.Request) {
	statistics, err := ctrl.AdminUsecase.FetchStatistics(r.Context())
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatisticsSuccess, statistics)
}

func (ctrl *AdminController) FetchDetailedStatistics(w http.ResponseWriter, r *http.Request) {
	request := &requests.DetailedStatistics{
		StartDate: r.URL.Query().Get(constvars.URLQueryParamStartDate),
		EndDate:   r.URL.Query().Get(constvars.URLQueryParamEndDate),
	}

	statistics, err := ctrl.AdminUsecase.FetchDetailedStatistics(r.Context(), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatisticsSuccess, statistics)
}
