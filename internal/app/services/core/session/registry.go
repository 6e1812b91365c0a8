package session

import (
	"medcalc-service/internal/app/contracts"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry hands every BFF session its own Container.
type Registry struct {
	mu               sync.Mutex
	containers       map[string]*Container
	QuestionnaireAPI contracts.QuestionnaireAPI
	Log              *zap.Logger
}

func NewRegistry(questionnaireAPI contracts.QuestionnaireAPI, logger *zap.Logger) *Registry {
	return &Registry{
		containers:       make(map[string]*Container),
		QuestionnaireAPI: questionnaireAPI,
		Log:              logger,
	}
}

// Get returns the container of sessionID, creating an empty one on first use.
func (r *Registry) Get(sessionID string) *Container {
	r.mu.Lock()
	defer r.mu.Unlock()

	container, ok := r.containers[sessionID]
	if !ok {
		container = NewContainer(r.QuestionnaireAPI, r.Log)
		r.containers[sessionID] = container
	}
	return container
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.containers, sessionID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.containers)
}

// Prune drops containers unused for longer than idle. Containers with a
// submission in flight are kept.
func (r *Registry) Prune(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-idle)
	removed := 0
	for sessionID, container := range r.containers {
		lastUsed, submitting := container.idleSince()
		if submitting || lastUsed.After(cutoff) {
			continue
		}
		delete(r.containers, sessionID)
		removed++
	}
	return removed
}
