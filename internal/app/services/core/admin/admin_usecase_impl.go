package admin

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/paging"
	"medcalc-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// adminLists are the lists an administrator pages through on one device.
type adminLists struct {
	pending  paging.Cache[models.Result]
	users    paging.Cache[models.User]
	lastUsed time.Time
}

type adminUsecase struct {
	mu       sync.Mutex
	lists    map[string]*adminLists
	AdminAPI contracts.AdminAPI
	Events   contracts.EventPublisher
	Log      *zap.Logger
	now      func() time.Time
}

func NewAdminUsecase(adminAPI contracts.AdminAPI, events contracts.EventPublisher, logger *zap.Logger) AdminUsecase {
	return &adminUsecase{
		lists:    make(map[string]*adminLists),
		AdminAPI: adminAPI,
		Events:   events,
		Log:      logger,
		now:      time.Now,
	}
}

func (uc *adminUsecase) listsOf(sessionID string) *adminLists {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	lists, ok := uc.lists[sessionID]
	if !ok {
		lists = &adminLists{}
		uc.lists[sessionID] = lists
	}
	lists.lastUsed = uc.now()
	return lists
}

func (uc *adminUsecase) Remove(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.lists, sessionID)
}

// Prune drops the lists of devices that have not paged for longer than idle.
func (uc *adminUsecase) Prune(idle time.Duration) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cutoff := uc.now().Add(-idle)
	removed := 0
	for sessionID, lists := range uc.lists {
		if lists.lastUsed.After(cutoff) {
			continue
		}
		delete(uc.lists, sessionID)
		removed++
	}
	return removed
}

func (uc *adminUsecase) FetchPendingResults(ctx context.Context, sessionID string, page, pageSize int) (*paging.Page[models.Result], error) {
	requestID := utils.GetRequestID(ctx)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = constvars.DefaultPendingPageSize
	}

	uc.Log.Info("adminUsecase.FetchPendingResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
	)

	pending, err := uc.AdminAPI.GetPendingResults(ctx, page, pageSize)
	if err != nil {
		uc.Log.Error("adminUsecase.FetchPendingResults error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceResult)
	}

	uc.listsOf(sessionID).pending.Store(page, pending.Results)
	result := paging.NewPage(pending.Results, page, pageSize, pending.Total)

	uc.Log.Info("adminUsecase.FetchPendingResults succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result.Items)),
	)
	return &result, nil
}

// InterpretResult stores the specialist's comment and takes the result off
// the cached pending list.
func (uc *adminUsecase) InterpretResult(ctx context.Context, sessionID, resultID string, request *requests.InterpretResult) error {
	requestID := utils.GetRequestID(ctx)
	comment := strings.TrimSpace(request.Comment)
	if comment == "" {
		return exceptions.ErrInterpretationCommentMissing()
	}

	uc.Log.Info("adminUsecase.InterpretResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	err := uc.AdminAPI.InterpretResult(ctx, resultID, &requests.Interpretation{
		Comment:         comment,
		Recommendations: strings.TrimSpace(request.Recommendations),
		Status:          constvars.InterpretationStatusCompleted,
	})
	if err != nil {
		uc.Log.Error("adminUsecase.InterpretResult error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResultIDKey, resultID),
			zap.Error(err),
		)
		return exceptions.ErrSubmitResource(err, constvars.ResourceInterpretation)
	}

	removed := uc.listsOf(sessionID).pending.Remove(func(result models.Result) bool {
		return result.ID == resultID
	})

	uc.Events.Publish(ctx, constvars.EventInterpretationCompleted, map[string]interface{}{
		"result_id":           resultID,
		"completed_at":        time.Now().UTC(),
		"has_recommendations": request.Recommendations != "",
	})

	uc.Log.Info("adminUsecase.InterpretResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
		zap.Int(constvars.LoggingRemovedFromPendingKey, removed),
	)
	return nil
}

func (uc *adminUsecase) FetchUsers(ctx context.Context, sessionID string, request *requests.FindUsers) (*paging.Page[models.User], error) {
	requestID := utils.GetRequestID(ctx)
	if request.Page < 1 {
		request.Page = 1
	}
	if request.PageSize < 1 {
		request.PageSize = constvars.DefaultUsersPageSize
	}

	uc.Log.Info("adminUsecase.FetchUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, request.Page),
		zap.String(constvars.LoggingSearchKey, request.Search),
	)

	users, err := uc.AdminAPI.GetUsers(ctx, request)
	if err != nil {
		uc.Log.Error("adminUsecase.FetchUsers error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceUsers)
	}

	uc.listsOf(sessionID).users.Store(request.Page, users.Users)
	result := paging.NewPage(users.Users, request.Page, request.PageSize, users.Total)

	uc.Log.Info("adminUsecase.FetchUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result.Items)),
	)
	return &result, nil
}

func (uc *adminUsecase) ToggleUserStatus(ctx context.Context, sessionID, userID string, isActive bool) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("adminUsecase.ToggleUserStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Bool(constvars.LoggingIsActiveKey, isActive),
	)

	err := uc.AdminAPI.UpdateUserStatus(ctx, userID, isActive)
	if err != nil {
		uc.Log.Error("adminUsecase.ToggleUserStatus error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return exceptions.ErrSubmitResource(err, constvars.ResourceUsers)
	}

	uc.listsOf(sessionID).users.Update(
		func(user models.User) bool { return user.ID == userID },
		func(user *models.User) { user.IsActive = isActive },
	)
	return nil
}

func (uc *adminUsecase) FetchStatistics(ctx context.Context) (*models.Statistics, error) {
	statistics, err := uc.AdminAPI.GetStatistics(ctx)
	if err != nil {
		uc.Log.Error("adminUsecase.FetchStatistics error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceStatistics)
	}
	return statistics, nil
}

// FetchDetailedStatistics expects YYYY-MM-DD dates with start not after end.
func (uc *adminUsecase) FetchDetailedStatistics(ctx context.Context, request *requests.DetailedStatistics) (models.DetailedStatistics, error) {
	requestID := utils.GetRequestID(ctx)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	start, _ := time.Parse(constvars.DateOnlyLayout, request.StartDate)
	end, _ := time.Parse(constvars.DateOnlyLayout, request.EndDate)
	if start.After(end) {
		return nil, exceptions.ErrInvalidDateRange(request.StartDate, request.EndDate)
	}

	uc.Log.Info("adminUsecase.FetchDetailedStatistics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStartDateKey, request.StartDate),
		zap.String(constvars.LoggingEndDateKey, request.EndDate),
	)

	statistics, err := uc.AdminAPI.GetDetailedStatistics(ctx, request)
	if err != nil {
		uc.Log.Error("adminUsecase.FetchDetailedStatistics error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceStatistics)
	}
	return statistics, nil
}

func (uc *adminUsecase) CachedPendingResults(sessionID string) []models.Result {
	return uc.listsOf(sessionID).pending.Items()
}

func (uc *adminUsecase) CachedUsers(sessionID string) []models.User {
	return uc.listsOf(sessionID).users.Items()
}
