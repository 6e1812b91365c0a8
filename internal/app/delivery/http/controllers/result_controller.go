package controllers

import (
	"medcalc-service/internal/app/services/core/results"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ResultController struct {
	Log           *zap.Logger
	ResultUsecase results.ResultUsecase
}

func NewResultController(logger *zap.Logger, resultUsecase results.ResultUsecase) *ResultController {
	return &ResultController{
		Log:           logger,
		ResultUsecase: resultUsecase,
	}
}

func (ctrl *ResultController) FetchHistory(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r, constvars.DefaultHistoryPageSize)

	page, err := ctrl.ResultUsecase.FetchHistory(r.Context(), utils.GetSessionID(r.Context()), pagination.Page, pagination.PageSize)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.HistorySuccess, paginationOf(r, page), page)
}

func (ctrl *ResultController) FetchResultDetail(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, constvars.URLParamResultID)
	if resultID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamResultID))
		return
	}

	response, err := ctrl.ResultUsecase.FetchResultDetail(r.Context(), utils.GetSessionID(r.Context()), resultID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResultSuccess, response)
}

func (ctrl *ResultController) RequestInterpretation(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, constvars.URLParamResultID)
	if resultID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamResultID))
		return
	}

	if err := ctrl.ResultUsecase.RequestInterpretation(r.Context(), utils.GetSessionID(r.Context()), resultID); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InterpretationRequest, nil)
}

func (ctrl *ResultController) ShareResult(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, constvars.URLParamResultID)
	if resultID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamResultID))
		return
	}

	response, err := ctrl.ResultUsecase.ShareResult(r.Context(), utils.GetSessionID(r.Context()), resultID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ShareResultSuccess, response)
}
