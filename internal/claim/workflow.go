// Package claim implements the claim workflow: a small state machine that
// transitions available results to owned after a simulated processing delay.
package claim

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/search"
)

// Phase is the workflow's lifecycle state.
type Phase string

const (
	PhaseSearch     Phase = "search"
	PhaseSummary    Phase = "claim_summary"
	PhaseProcessing Phase = "processing"
	PhaseSuccess    Phase = "success"
)

// DefaultProcessingDelay simulates the payment/registration round trip.
const DefaultProcessingDelay = 2500 * time.Millisecond

var (
	// ErrNoAvailable is returned by Start when no current result is available.
	ErrNoAvailable = errors.New("claim: no available results to claim")

	// ErrNotPending is returned by Confirm outside the claim_summary phase.
	ErrNotPending = errors.New("claim: no claim summary pending")
)

// Workflow drives a claim over the search controller's current result set.
// The set of platform ids to claim is snapshotted when the claim starts;
// result status is re-validated at mutation time, so the snapshot only
// decides membership, never correctness.
type Workflow struct {
	mu         sync.Mutex
	controller *search.Controller
	log        logger.Logger
	delay      time.Duration
	afterFunc  func(time.Duration, func())
	onComplete func(flipped []string)

	phase   Phase
	pending []string
	token   string
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithProcessingDelay overrides the simulated processing latency.
func WithProcessingDelay(d time.Duration) Option {
	return func(w *Workflow) { w.delay = d }
}

// WithAfterFunc replaces the timer used to schedule completion.
func WithAfterFunc(f func(time.Duration, func())) Option {
	return func(w *Workflow) { w.afterFunc = f }
}

// WithOnComplete registers a hook fired after a claim completes, with the ids
// actually flipped to owned.
func WithOnComplete(f func(flipped []string)) Option {
	return func(w *Workflow) { w.onComplete = f }
}

// NewWorkflow creates a workflow in the search phase.
func NewWorkflow(controller *search.Controller, log logger.Logger, opts ...Option) *Workflow {
	w := &Workflow{
		controller: controller,
		log:        log,
		delay:      DefaultProcessingDelay,
		phase:      PhaseSearch,
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start snapshots the currently available result ids and moves to the
// claim_summary phase. Starting with nothing available is rejected, so a
// summary always holds at least one id.
func (w *Workflow) Start() ([]string, error) {
	ids := w.controller.AvailableIDs()
	if len(ids) == 0 {
		return nil, ErrNoAvailable
	}

	w.mu.Lock()
	w.phase = PhaseSummary
	w.pending = ids
	w.token = ""
	w.mu.Unlock()

	w.log.Info("claim started", logger.Int("platforms", len(ids)))
	return ids, nil
}

// Confirm moves a pending claim into processing. After the processing delay
// the snapshotted ids still available are flipped to owned.
func (w *Workflow) Confirm() error {
	w.mu.Lock()
	if w.phase != PhaseSummary {
		w.mu.Unlock()
		return ErrNotPending
	}
	token := uuid.NewString()
	w.phase = PhaseProcessing
	w.token = token
	pending := make([]string, len(w.pending))
	copy(pending, w.pending)
	w.mu.Unlock()

	w.log.Info("claim confirmed, processing", logger.Int("platforms", len(pending)))

	w.afterFunc(w.delay, func() {
		w.complete(token, pending)
	})
	return nil
}

// complete finishes processing unless the workflow was reset (or restarted)
// in the meantime.
func (w *Workflow) complete(token string, pending []string) {
	w.mu.Lock()
	if w.phase != PhaseProcessing || w.token != token {
		w.mu.Unlock()
		w.log.Debug("dropping stale claim completion")
		return
	}
	w.mu.Unlock()

	flipped := w.controller.MarkOwned(pending)

	w.mu.Lock()
	w.phase = PhaseSuccess
	w.token = ""
	w.mu.Unlock()

	w.log.Info("claim completed",
		logger.Int("requested", len(pending)),
		logger.Int("owned", len(flipped)))

	if w.onComplete != nil {
		w.onComplete(flipped)
	}
}

// Reset returns the workflow to the search phase from any state, discarding
// claim-in-progress state without side effects.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.phase = PhaseSearch
	w.pending = nil
	w.token = ""
}

// Phase returns the current lifecycle phase.
func (w *Workflow) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.phase
}

// Pending returns the snapshotted claim set, empty outside an active claim.
func (w *Workflow) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]string, len(w.pending))
	copy(out, w.pending)
	return out
}
