package controllers

import (
	"medcalc-service/internal/app/services/core/notifications"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase notifications.NotificationUsecase
}

func NewNotificationController(logger *zap.Logger, notificationUsecase notifications.NotificationUsecase) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
	}
}

func (ctrl *NotificationController) FetchNotifications(w http.ResponseWriter, r *http.Request) {
	list, err := ctrl.NotificationUsecase.FetchNotifications(r.Context())
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsSuccess, list)
}

func (ctrl *NotificationController) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, constvars.URLParamNotificationID)
	if notificationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamNotificationID))
		return
	}

	if err := ctrl.NotificationUsecase.MarkNotificationRead(r.Context(), notificationID); err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationReadOK, nil)
}
