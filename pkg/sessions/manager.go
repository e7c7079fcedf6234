// Package sessions keys one orchestrator per operator session. Each session
// owns an independent pipeline state and image file; nothing is shared across
// sessions.
package sessions

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
	"github.com/ayush19353/geopulse-ai-app/pkg/pipeline"
)

var ErrSessionNotFound = errors.New("session not found")

// Dependencies bundles the collaborators every session's orchestrator needs.
type Dependencies struct {
	Aggregator pipeline.SignalAggregator
	Ranker     pipeline.TriggerRanker
	Drafter    pipeline.AssetDrafter
	Publisher  pipeline.PostPublisher
	History    pipeline.HistoryRecorder
	Tracer     trace.Tracer
	Logger     *slog.Logger
}

// Manager creates and resolves per-session orchestrators. The map guard only
// covers session creation and lookup; within a session the flow stays a
// single logical thread as the pipeline requires.
type Manager struct {
	mu   sync.RWMutex
	deps Dependencies
	open map[string]*pipeline.Orchestrator
}

func NewManager(deps Dependencies) *Manager {
	return &Manager{
		deps: deps,
		open: make(map[string]*pipeline.Orchestrator),
	}
}

// Create opens a new session for the brand/city pair and returns its ID with
// the orchestrator.
func (m *Manager) Create(city string, profile models.BrandProfile) (string, *pipeline.Orchestrator) {
	sessionID := uuid.New().String()

	orchestrator := pipeline.NewOrchestrator(
		sessionID,
		city,
		profile,
		m.deps.Aggregator,
		m.deps.Ranker,
		m.deps.Drafter,
		m.deps.Publisher,
		m.deps.History,
		m.deps.Tracer,
		m.deps.Logger,
	)

	m.mu.Lock()
	m.open[sessionID] = orchestrator
	m.mu.Unlock()

	return sessionID, orchestrator
}

// Get resolves a session's orchestrator.
func (m *Manager) Get(sessionID string) (*pipeline.Orchestrator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orchestrator, ok := m.open[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return orchestrator, nil
}

// Close ends a session, abandoning any in-flight run and reclaiming its
// image file.
func (m *Manager) Close(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	orchestrator, ok := m.open[sessionID]
	delete(m.open, sessionID)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	orchestrator.Restart(ctx)

	return nil
}
