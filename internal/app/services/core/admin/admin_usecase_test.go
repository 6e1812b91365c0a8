package admin

import (
	"context"
	"errors"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/dto/requests"
	"medcalc-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAdminAPI struct {
	mock.Mock
}

func (m *MockAdminAPI) GetPendingResults(ctx context.Context, page, pageSize int) (*models.PendingPage, error) {
	args := m.Called(ctx, page, pageSize)
	pending, _ := args.Get(0).(*models.PendingPage)
	return pending, args.Error(1)
}

func (m *MockAdminAPI) InterpretResult(ctx context.Context, resultID string, request *requests.Interpretation) error {
	return m.Called(ctx, resultID, request).Error(0)
}

func (m *MockAdminAPI) GetUsers(ctx context.Context, request *requests.FindUsers) (*models.UserPage, error) {
	args := m.Called(ctx, request)
	users, _ := args.Get(0).(*models.UserPage)
	return users, args.Error(1)
}

func (m *MockAdminAPI) UpdateUserStatus(ctx context.Context, userID string, isActive bool) error {
	return m.Called(ctx, userID, isActive).Error(0)
}

func (m *MockAdminAPI) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	args := m.Called(ctx)
	statistics, _ := args.Get(0).(*models.Statistics)
	return statistics, args.Error(1)
}

func (m *MockAdminAPI) GetDetailedStatistics(ctx context.Context, request *requests.DetailedStatistics) (models.DetailedStatistics, error) {
	args := m.Called(ctx, request)
	statistics, _ := args.Get(0).(models.DetailedStatistics)
	return statistics, args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	return m.Called(ctx, event, payload).Error(0)
}

func pendingResults(ids ...string) []models.Result {
	results := make([]models.Result, 0, len(ids))
	for _, id := range ids {
		results = append(results, models.Result{ID: id, RequiresInterpretation: true})
	}
	return results
}

func TestFetchPendingResults_PagesAccumulate(t *testing.T) {
	api := new(MockAdminAPI)
	api.On("GetPendingResults", mock.Anything, 1, 2).Return(&models.PendingPage{Results: pendingResults("1", "2"), Total: 3}, nil)
	api.On("GetPendingResults", mock.Anything, 2, 2).Return(&models.PendingPage{Results: pendingResults("3"), Total: 3}, nil)

	usecase := NewAdminUsecase(api, new(MockEventPublisher), zap.NewNop())

	first, err := usecase.FetchPendingResults(context.Background(), "s1", 1, 2)
	require.NoError(t, err)
	assert.True(t, first.HasMore)

	_, err = usecase.FetchPendingResults(context.Background(), "s1", 2, 2)
	require.NoError(t, err)
	assert.Len(t, usecase.CachedPendingResults("s1"), 3)
	assert.Empty(t, usecase.CachedPendingResults("s2"))
}

func TestInterpretResult_RemovesFromPending(t *testing.T) {
	api := new(MockAdminAPI)
	api.On("GetPendingResults", mock.Anything, 1, 10).Return(&models.PendingPage{Results: pendingResults("1", "2")}, nil)
	api.On("InterpretResult", mock.Anything, "2", &requests.Interpretation{
		Comment:         "Рекомендована консультация",
		Recommendations: "Сон",
		Status:          "completed",
	}).Return(nil)

	events := new(MockEventPublisher)
	events.On("Publish", mock.Anything, "interpretation.completed", mock.Anything).Return(nil)

	usecase := NewAdminUsecase(api, events, zap.NewNop())
	_, _ = usecase.FetchPendingResults(context.Background(), "s1", 1, 0)

	err := usecase.InterpretResult(context.Background(), "s1", "2", &requests.InterpretResult{
		Comment:         "  Рекомендована консультация ",
		Recommendations: "Сон",
	})
	require.NoError(t, err)

	cached := usecase.CachedPendingResults("s1")
	require.Len(t, cached, 1)
	assert.Equal(t, "1", cached[0].ID)
	api.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestInterpretResult_RequiresComment(t *testing.T) {
	api := new(MockAdminAPI)
	usecase := NewAdminUsecase(api, new(MockEventPublisher), zap.NewNop())

	err := usecase.InterpretResult(context.Background(), "s1", "2", &requests.InterpretResult{Comment: "   "})
	assert.True(t, errors.Is(err, exceptions.ErrKindValidation))
	api.AssertNotCalled(t, "InterpretResult", mock.Anything, mock.Anything, mock.Anything)
}

func TestInterpretResult_FailureKeepsPending(t *testing.T) {
	api := new(MockAdminAPI)
	api.On("GetPendingResults", mock.Anything, 1, 10).Return(&models.PendingPage{Results: pendingResults("1")}, nil)
	api.On("InterpretResult", mock.Anything, "1", mock.Anything).
		Return(exceptions.ErrUpstreamStatus(http.StatusForbidden, "", http.MethodPost, "/admin/results/1/interpret"))

	usecase := NewAdminUsecase(api, new(MockEventPublisher), zap.NewNop())
	_, _ = usecase.FetchPendingResults(context.Background(), "s1", 1, 10)

	err := usecase.InterpretResult(context.Background(), "s1", "1", &requests.InterpretResult{Comment: "ok"})
	require.Error(t, err)
	assert.Len(t, usecase.CachedPendingResults("s1"), 1)
}

func TestToggleUserStatus_UpdatesCachedUser(t *testing.T) {
	api := new(MockAdminAPI)
	api.On("GetUsers", mock.Anything, mock.Anything).Return(&models.UserPage{Users: []models.User{
		{ID: "1", IsActive: true},
		{ID: "2", IsActive: true},
	}}, nil)
	api.On("UpdateUserStatus", mock.Anything, "2", false).Return(nil)

	usecase := NewAdminUsecase(api, new(MockEventPublisher), zap.NewNop())
	page, err := usecase.FetchUsers(context.Background(), "s1", &requests.FindUsers{Search: "iv"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)

	require.NoError(t, usecase.ToggleUserStatus(context.Background(), "s1", "2", false))

	users := usecase.CachedUsers("s1")
	assert.True(t, users[0].IsActive)
	assert.False(t, users[1].IsActive)
}

func TestFetchDetailedStatistics_ValidatesDates(t *testing.T) {
	api := new(MockAdminAPI)
	api.On("GetDetailedStatistics", mock.Anything, mock.Anything).Return(models.DetailedStatistics{"total": 3}, nil)
	usecase := NewAdminUsecase(api, new(MockEventPublisher), zap.NewNop())

	_, err := usecase.FetchDetailedStatistics(context.Background(), &requests.DetailedStatistics{StartDate: "01.02.2024", EndDate: "2024-02-10"})
	assert.True(t, errors.Is(err, exceptions.ErrKindValidation))

	_, err = usecase.FetchDetailedStatistics(context.Background(), &requests.DetailedStatistics{StartDate: "2024-03-01", EndDate: "2024-02-10"})
	assert.True(t, errors.Is(err, exceptions.ErrKindValidation))

	statistics, err := usecase.FetchDetailedStatistics(context.Background(), &requests.DetailedStatistics{StartDate: "2024-02-01", EndDate: "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, 3, statistics["total"])
	api.AssertNumberOfCalls(t, "GetDetailedStatistics", 1)
}

func TestRemove_DropsSessionLists(t *testing.T) {
	api := new(MockAdminAPI)
	api.On("GetPendingResults", mock.Anything, 1, 10).Return(&models.PendingPage{Results: pendingResults("1")}, nil)
	usecase := NewAdminUsecase(api, new(MockEventPublisher), zap.NewNop())
	_, _ = usecase.FetchPendingResults(context.Background(), "s1", 1, 10)

	usecase.Remove("s1")

	assert.Empty(t, usecase.CachedPendingResults("s1"))
}

func TestPrune_DropsIdleSessionLists(t *testing.T) {
	api := new(MockAdminAPI)
	api.On("GetPendingResults", mock.Anything, 1, 10).Return(&models.PendingPage{Results: pendingResults("1")}, nil)
	usecase := NewAdminUsecase(api, new(MockEventPublisher), zap.NewNop()).(*adminUsecase)
	clock := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	usecase.now = func() time.Time { return clock }

	_, err := usecase.FetchPendingResults(context.Background(), "idle", 1, 10)
	require.NoError(t, err)
	clock = clock.Add(2 * time.Hour)
	_, err = usecase.FetchPendingResults(context.Background(), "active", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, usecase.Prune(time.Hour))
	assert.Len(t, usecase.lists, 1)
	assert.Contains(t, usecase.lists, "active")
}
