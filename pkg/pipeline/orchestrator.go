package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ayush19353/geopulse-ai-app/pkg/creative"
	"github.com/ayush19353/geopulse-ai-app/pkg/models"
	"github.com/ayush19353/geopulse-ai-app/pkg/otelhelper"
	"github.com/ayush19353/geopulse-ai-app/pkg/publisher"
)

// SignalAggregator collects the city's live signals. It is tolerant: single
// provider failures degrade to sentinel fields, never to an error.
type SignalAggregator interface {
	Fetch(ctx context.Context, city string) models.SignalRecord
}

// TriggerRanker proposes ranked marketing triggers. An empty slice with a nil
// error is a recoverable "no safe triggers found" outcome.
type TriggerRanker interface {
	Rank(ctx context.Context, signal models.SignalRecord, profile models.BrandProfile) ([]models.Trigger, error)
}

// AssetDrafter runs the three creative sub-calls.
type AssetDrafter interface {
	Draft(
		ctx context.Context,
		trigger models.Trigger,
		signal models.SignalRecord,
		profile models.BrandProfile,
		imageName string,
	) (models.CreativeAssets, error)
}

// PostPublisher fans the finished post out to every destination.
type PostPublisher interface {
	PublishAll(ctx context.Context, post publisher.Post) []models.PublishOutcome
}

// HistoryRecorder archives completed runs. Optional; failures are logged,
// never surfaced.
type HistoryRecorder interface {
	Save(ctx context.Context, run models.Run) error
}

// Orchestrator owns exactly one live Run and is the only place failure
// routing decisions are made. All state access goes through its operations;
// the web layer is a pure consumer.
type Orchestrator struct {
	mu sync.Mutex

	sessionID string
	run       models.Run

	aggregator SignalAggregator
	ranker     TriggerRanker
	drafter    AssetDrafter
	publisher  PostPublisher
	history    HistoryRecorder
	tracer     trace.Tracer
	logger     *slog.Logger
}

// NewOrchestrator creates an orchestrator with a fresh run in the selection
// stage. tracer and history may be nil.
func NewOrchestrator(
	sessionID, city string,
	profile models.BrandProfile,
	aggregator SignalAggregator,
	ranker TriggerRanker,
	drafter AssetDrafter,
	postPublisher PostPublisher,
	history HistoryRecorder,
	tracer trace.Tracer,
	logger *slog.Logger,
) *Orchestrator {
	o := &Orchestrator{
		sessionID:  sessionID,
		aggregator: aggregator,
		ranker:     ranker,
		drafter:    drafter,
		publisher:  postPublisher,
		history:    history,
		tracer:     tracer,
		logger:     logger.With("module", "orchestrator", "session_id", sessionID),
	}
	o.run = o.freshRun(city, profile)

	return o
}

func (o *Orchestrator) freshRun(city string, profile models.BrandProfile) models.Run {
	return models.Run{
		ID:        "run-" + uuid.New().String()[:8],
		Stage:     models.StageSelection,
		City:      city,
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}
}

// imageName is the session-scoped basename the rendered image is persisted
// under; reusing it across runs makes the render overwrite stale files.
func (o *Orchestrator) imageName() string {
	return "geopulse_" + o.sessionID
}

// Snapshot returns a copy of the current run for rendering.
func (o *Orchestrator) Snapshot() models.Run {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.run
}

// Analyze aggregates signals and ranks triggers. On success with a non-empty
// ranking the run advances to approval. An empty ranking or a ranking error
// keeps the run in selection with an operator-facing notice.
func (o *Orchestrator) Analyze(ctx context.Context) (models.Run, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.run.Stage != models.StageSelection {
		return o.run, fmt.Errorf("%w: analyze requires selection, run is in %s", ErrInvalidStage, o.run.Stage)
	}

	ctx, span := o.startSpan(ctx, "pipeline.analyze")
	defer span.End()

	signal := o.aggregator.Fetch(ctx, o.run.City)
	o.run.Signals = signal

	triggers, err := o.ranker.Rank(ctx, signal, o.run.Profile)
	if err != nil {
		otelhelper.SetError(span, err)
		o.applyEvent(EventRankingFailed)
		o.run.Notice = "Trigger analysis failed: " + err.Error()

		return o.run, fmt.Errorf("trigger ranking failed: %w", err)
	}

	if len(triggers) == 0 {
		o.applyEvent(EventRankingEmpty)
		o.run.Notice = "No safe triggers found for the current signals. Try again later."

		return o.run, nil
	}

	o.run.RankedTriggers = triggers
	o.run.Notice = ""
	o.applyEvent(EventTriggersRanked)

	o.logger.InfoContext(ctx, "Triggers ranked", "run_id", o.run.ID, "count", len(triggers))

	return o.run, nil
}

// ConfirmTrigger confirms the ranked trigger at index and advances the run to
// generation.
func (o *Orchestrator) ConfirmTrigger(ctx context.Context, index int) (models.Run, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.run.Stage != models.StageApproval {
		return o.run, fmt.Errorf("%w: confirm requires approval, run is in %s", ErrInvalidStage, o.run.Stage)
	}

	if index < 0 || index >= len(o.run.RankedTriggers) {
		return o.run, fmt.Errorf("%w: %d", ErrTriggerIndex, index)
	}

	return o.confirm(ctx, o.run.RankedTriggers[index])
}

// ConfirmCustomTrigger substitutes a free-form operator trigger for the
// ranked ones and advances the run to generation.
func (o *Orchestrator) ConfirmCustomTrigger(ctx context.Context, trigger models.Trigger) (models.Run, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.run.Stage != models.StageApproval {
		return o.run, fmt.Errorf("%w: confirm requires approval, run is in %s", ErrInvalidStage, o.run.Stage)
	}

	trigger.Reasoning = "Operator-provided custom trigger."

	return o.confirm(ctx, trigger)
}

func (o *Orchestrator) confirm(ctx context.Context, trigger models.Trigger) (models.Run, error) {
	o.run.SelectedTrigger = &trigger
	o.run.Notice = ""
	o.applyEvent(EventTriggerConfirmed)

	o.logger.InfoContext(ctx, "Trigger confirmed",
		"run_id", o.run.ID, "trigger", trigger.Trigger, "tone", trigger.Tone)

	return o.run, nil
}

// Generate runs the three creative sub-calls. Any sub-call failure rolls the
// run back to approval carrying the failed sub-call's name, so the operator
// can retry from there instead of from the very start.
func (o *Orchestrator) Generate(ctx context.Context) (models.Run, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.run.Stage != models.StageGeneration {
		return o.run, fmt.Errorf("%w: generate requires generation, run is in %s", ErrInvalidStage, o.run.Stage)
	}

	ctx, span := o.startSpan(ctx, "pipeline.generate")
	defer span.End()

	assets, err := o.drafter.Draft(ctx, *o.run.SelectedTrigger, o.run.Signals, o.run.Profile, o.imageName())
	if err != nil {
		otelhelper.SetError(span, err)
		o.applyEvent(EventGenerationFailed)

		if subCall, ok := creative.FailedSubCall(err); ok {
			span.SetAttributes(attribute.String(otelhelper.SubCallKey, string(subCall)))
			o.run.Notice = fmt.Sprintf("Creative generation failed at the %s step: %v", subCall, err)
		} else {
			o.run.Notice = "Creative generation failed: " + err.Error()
		}

		return o.run, fmt.Errorf("creative generation failed: %w", err)
	}

	if !assets.Complete() {
		otelhelper.SetError(span, ErrAssetsIncomplete)
		o.applyEvent(EventGenerationFailed)
		o.run.Notice = "Creative generation produced an incomplete asset set."

		return o.run, ErrAssetsIncomplete
	}

	o.run.Assets = assets
	o.run.Notice = ""
	o.applyEvent(EventGenerationSucceeded)

	o.logger.InfoContext(ctx, "Creative assets generated", "run_id", o.run.ID, "image_path", assets.ImagePath)

	return o.run, nil
}

// Publish attempts delivery to every destination and moves the run to done
// regardless of individual outcomes, which are recorded on the run. The
// persisted image is reclaimed only after all attempts have finished.
func (o *Orchestrator) Publish(ctx context.Context) (models.Run, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.run.Stage != models.StageReview {
		return o.run, fmt.Errorf("%w: publish requires review, run is in %s", ErrInvalidStage, o.run.Stage)
	}

	ctx, span := o.startSpan(ctx, "pipeline.publish")
	defer span.End()

	post := publisher.Post{
		Text:      o.run.Assets.PostText,
		Hashtags:  o.run.Assets.Hashtags,
		ImagePath: o.run.Assets.ImagePath,
	}

	o.run.Outcomes = o.publisher.PublishAll(ctx, post)
	o.applyEvent(EventPublishAttempted)

	now := time.Now().UTC()
	o.run.CompletedAt = &now

	if o.history != nil {
		err := o.history.Save(ctx, o.run)
		if err != nil {
			o.logger.ErrorContext(ctx, "Failed to archive run", "run_id", o.run.ID, "error", err)
		}
	}

	o.reclaimImage(ctx)

	return o.run, nil
}

// Restart abandons or finishes the current run: the image file is reclaimed
// and the state is reset in full, back to selection with the same city and
// profile.
func (o *Orchestrator) Restart(ctx context.Context) models.Run {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.reclaimImage(ctx)

	o.logger.InfoContext(ctx, "Run restarted", "previous_run_id", o.run.ID)

	o.run = o.freshRun(o.run.City, o.run.Profile)

	return o.run
}

func (o *Orchestrator) reclaimImage(ctx context.Context) {
	path := o.run.Assets.ImagePath
	if path == "" {
		return
	}

	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		o.logger.ErrorContext(ctx, "Failed to remove image file", "path", path, "error", err)
	}
}

// applyEvent advances the run's stage through the transition table. The
// orchestrator only emits events its guards have already validated, so a
// table miss is a programming error worth a loud log.
func (o *Orchestrator) applyEvent(event Event) {
	next, err := Transition(o.run.Stage, event)
	if err != nil {
		o.logger.Error("Rejected stage transition", "stage", o.run.Stage, "event", event, "error", err)

		return
	}

	o.run.Stage = next
}

func (o *Orchestrator) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if o.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}

	return otelhelper.StartSpan(ctx, o.tracer, name,
		attribute.String(otelhelper.SessionIDKey, o.sessionID),
		attribute.String(otelhelper.RunIDKey, o.run.ID),
		attribute.String(otelhelper.StageKey, string(o.run.Stage)),
		attribute.String(otelhelper.CityKey, o.run.City),
		attribute.String(otelhelper.BrandKey, o.run.Profile.BrandName),
	)
}
