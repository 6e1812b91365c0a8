package history

import (
	"context"
	"medcalc-service/internal/app/contracts"
	"medcalc-service/internal/app/models"
	"medcalc-service/internal/pkg/constvars"
	"medcalc-service/internal/pkg/exceptions"
	"medcalc-service/internal/pkg/paging"
	"medcalc-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Accessor reads the result history of one signed-in device and keeps the
// pages fetched so far.
type Accessor struct {
	ResultsAPI contracts.ResultsAPI
	Log        *zap.Logger
	cache      paging.Cache[models.ResultSummary]
}

func NewAccessor(resultsAPI contracts.ResultsAPI, logger *zap.Logger) *Accessor {
	return &Accessor{
		ResultsAPI: resultsAPI,
		Log:        logger,
	}
}

// FetchHistory loads one page. Page 1 replaces the cached list and later
// pages extend it.
func (a *Accessor) FetchHistory(ctx context.Context, page, pageSize int) (*paging.Page[models.ResultSummary], error) {
	requestID := utils.GetRequestID(ctx)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = constvars.DefaultHistoryPageSize
	}

	a.Log.Info("Accessor.FetchHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingPageSizeKey, pageSize),
	)

	resultPage, err := a.ResultsAPI.GetHistory(ctx, page, pageSize)
	if err != nil {
		a.Log.Error("Accessor.FetchHistory error fetching history",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingPageKey, page),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceHistory)
	}

	a.cache.Store(page, resultPage.Results)
	result := paging.NewPage(resultPage.Results, page, pageSize, resultPage.Total)

	a.Log.Info("Accessor.FetchHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result.Items)),
	)
	return &result, nil
}

func (a *Accessor) FetchResultDetail(ctx context.Context, resultID string) (*models.Result, error) {
	requestID := utils.GetRequestID(ctx)
	a.Log.Info("Accessor.FetchResultDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	result, err := a.ResultsAPI.GetResult(ctx, resultID)
	if err != nil {
		a.Log.Error("Accessor.FetchResultDetail error fetching result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResultIDKey, resultID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceResult)
	}

	a.Log.Info("Accessor.FetchResultDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, result.ID),
	)
	return result, nil
}

// RequestInterpretation asks a specialist to interpret the result. Asking
// twice is harmless; the cached row is marked pending either way.
func (a *Accessor) RequestInterpretation(ctx context.Context, resultID string) error {
	requestID := utils.GetRequestID(ctx)
	a.Log.Info("Accessor.RequestInterpretation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)

	err := a.ResultsAPI.RequestInterpretation(ctx, resultID)
	if err != nil {
		a.Log.Error("Accessor.RequestInterpretation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResultIDKey, resultID),
			zap.Error(err),
		)
		return exceptions.ErrSubmitResource(err, constvars.ResourceInterpretation)
	}

	a.cache.Update(
		func(summary models.ResultSummary) bool { return summary.ID == resultID },
		func(summary *models.ResultSummary) { summary.InterpretationPending = true },
	)

	a.Log.Info("Accessor.RequestInterpretation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResultIDKey, resultID),
	)
	return nil
}

// Cached returns the rows of every page fetched so far, in order.
func (a *Accessor) Cached() []models.ResultSummary {
	return a.cache.Items()
}

// Invalidate forgets the cached pages, for instance after a new result was
// submitted and page 1 no longer matches the server.
func (a *Accessor) Invalidate() {
	a.cache.Reset()
}

// Registry hands every BFF session its own Accessor.
type Registry struct {
	mu         sync.Mutex
	accessors  map[string]*Accessor
	lastUsed   map[string]time.Time
	ResultsAPI contracts.ResultsAPI
	Log        *zap.Logger
	now        func() time.Time
}

func NewRegistry(resultsAPI contracts.ResultsAPI, logger *zap.Logger) *Registry {
	return &Registry{
		accessors:  make(map[string]*Accessor),
		lastUsed:   make(map[string]time.Time),
		ResultsAPI: resultsAPI,
		Log:        logger,
		now:        time.Now,
	}
}

// Get returns the accessor of sessionID, creating an empty one on first use.
func (r *Registry) Get(sessionID string) *Accessor {
	r.mu.Lock()
	defer r.mu.Unlock()

	accessor, ok := r.accessors[sessionID]
	if !ok {
		accessor = NewAccessor(r.ResultsAPI, r.Log)
		r.accessors[sessionID] = accessor
	}
	r.lastUsed[sessionID] = r.now()
	return accessor
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accessors, sessionID)
	delete(r.lastUsed, sessionID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accessors)
}

// Prune drops accessors not handed out for longer than idle.
func (r *Registry) Prune(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	removed := 0
	for sessionID, lastUsed := range r.lastUsed {
		if lastUsed.After(cutoff) {
			continue
		}
		delete(r.accessors, sessionID)
		delete(r.lastUsed, sessionID)
		removed++
	}
	return removed
}
