package history

import (
	"context"
	"errors"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockResultsAPI struct {
	mock.Mock
}

func (m *MockResultsAPI) GetHistory(ctx context.Context, page, pageSize int) (*models.ResultPage, error) {
	args := m.Called(ctx, page, pageSize)
	resultPage, _ := args.Get(0).(*models.ResultPage)
	return resultPage, args.Error(1)
}

func (m *MockResultsAPI) GetResult(ctx context.Context, resultID string) (*models.Result, error) {
	args := m.Called(ctx, resultID)
	result, _ := args.Get(0).(*models.Result)
	return result, args.Error(1)
}

func (m *MockResultsAPI) RequestInterpretation(ctx context.Context, resultID string) error {
	args := m.Called(ctx, resultID)
	return args.Error(0)
}

func summaries(ids ...string) []models.ResultSummary {
	items := make([]models.ResultSummary, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.ResultSummary{ID: id})
	}
	return items
}

func ids(items []models.ResultSummary) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.ID)
	}
	return result
}

func TestFetchHistory_PageOneReplacesLaterPagesAppend(t *testing.T) {
	api := new(MockResultsAPI)
	api.On("GetHistory", mock.Anything, 1, 2).Return(&models.ResultPage{Results: summaries("a", "b"), Total: 3}, nil).Once()
	api.On("GetHistory", mock.Anything, 2, 2).Return(&models.ResultPage{Results: summaries("c"), Total: 3}, nil).Once()
	api.On("GetHistory", mock.Anything, 1, 2).Return(&models.ResultPage{Results: summaries("z", "a"), Total: 4}, nil).Once()

	accessor := NewAccessor(api, zap.NewNop())
	ctx := context.Background()

	first, err := accessor.FetchHistory(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, first.HasMore)

	second, err := accessor.FetchHistory(ctx, 2, 2)
	require.NoError(t, err)
	assert.False(t, second.HasMore)
	assert.Equal(t, []string{"a", "b", "c"}, ids(accessor.Cached()))

	_, err = accessor.FetchHistory(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, ids(accessor.Cached()))
}

func TestFetchHistory_RetryOfSamePageIsIdempotent(t *testing.T) {
	api := new(MockResultsAPI)
	api.On("GetHistory", mock.Anything, 1, 2).Return(&models.ResultPage{Results: summaries("a", "b")}, nil)
	api.On("GetHistory", mock.Anything, 2, 2).Return(&models.ResultPage{Results: summaries("c", "d")}, nil)

	accessor := NewAccessor(api, zap.NewNop())
	ctx := context.Background()

	_, _ = accessor.FetchHistory(ctx, 1, 2)
	_, _ = accessor.FetchHistory(ctx, 2, 2)
	_, _ = accessor.FetchHistory(ctx, 2, 2)

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(accessor.Cached()))
}

func TestFetchHistory_FailureKeepsCache(t *testing.T) {
	api := new(MockResultsAPI)
	api.On("GetHistory", mock.Anything, 1, 10).Return(&models.ResultPage{Results: summaries("a")}, nil).Once()
	api.On("GetHistory", mock.Anything, 2, 10).Return(nil, exceptions.ErrSendHTTPRequest(errors.New("down"))).Once()

	accessor := NewAccessor(api, zap.NewNop())
	_, _ = accessor.FetchHistory(context.Background(), 1, 0)

	_, err := accessor.FetchHistory(context.Background(), 2, 10)
	assert.True(t, errors.Is(err, exceptions.ErrKindFetch))
	assert.Equal(t, []string{"a"}, ids(accessor.Cached()))
}

func TestFetchResultDetail_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   error
	}{
		{"Not Found", http.StatusNotFound, exceptions.ErrKindNotFound},
		{"Forbidden", http.StatusForbidden, exceptions.ErrKindForbidden},
		{"Unauthorized", http.StatusUnauthorized, exceptions.ErrKindUnauthorized},
		{"Server Error", http.StatusInternalServerError, exceptions.ErrKindFetch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockResultsAPI)
			api.On("GetResult", mock.Anything, "9").
				Return(nil, exceptions.ErrUpstreamStatus(tt.status, "", http.MethodGet, "/results/9"))

			_, err := NewAccessor(api, zap.NewNop()).FetchResultDetail(context.Background(), "9")
			assert.True(t, errors.Is(err, tt.kind))
			assert.True(t, errors.Is(err, exceptions.ErrKindFetch))
		})
	}
}

func TestRequestInterpretation_MarksCachedRowPending(t *testing.T) {
	api := new(MockResultsAPI)
	api.On("GetHistory", mock.Anything, 1, 10).Return(&models.ResultPage{Results: summaries("a", "b")}, nil)
	api.On("RequestInterpretation", mock.Anything, "b").Return(nil).Twice()

	accessor := NewAccessor(api, zap.NewNop())
	_, _ = accessor.FetchHistory(context.Background(), 1, 10)

	require.NoError(t, accessor.RequestInterpretation(context.Background(), "b"))
	require.NoError(t, accessor.RequestInterpretation(context.Background(), "b"))

	cached := accessor.Cached()
	assert.False(t, cached[0].InterpretationPending)
	assert.True(t, cached[1].InterpretationPending)
	api.AssertExpectations(t)
}

func TestRequestInterpretation_Failure(t *testing.T) {
	api := new(MockResultsAPI)
	api.On("RequestInterpretation", mock.Anything, "b").
		Return(exceptions.ErrUpstreamStatus(http.StatusConflict, "already requested", http.MethodPost, "/results/b/request-interpretation"))

	err := NewAccessor(api, zap.NewNop()).RequestInterpretation(context.Background(), "b")
	assert.True(t, errors.Is(err, exceptions.ErrKindSubmission))
}

func TestRegistry_SeparatesSessions(t *testing.T) {
	registry := NewRegistry(new(MockResultsAPI), zap.NewNop())

	assert.Same(t, registry.Get("s1"), registry.Get("s1"))
	assert.NotSame(t, registry.Get("s1"), registry.Get("s2"))

	first := registry.Get("s1")
	registry.Remove("s1")
	assert.NotSame(t, first, registry.Get("s1"))
}

func TestRegistry_PruneDropsIdleAccessors(t *testing.T) {
	registry := NewRegistry(new(MockResultsAPI), zap.NewNop())
	clock := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return clock }

	registry.Get("idle")
	clock = clock.Add(2 * time.Hour)
	active := registry.Get("active")

	assert.Equal(t, 1, registry.Prune(time.Hour))
	assert.Equal(t, 1, registry.Len())
	assert.Same(t, active, registry.Get("active"))
}
