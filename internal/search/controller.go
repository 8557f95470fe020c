// Package search orchestrates one availability search across the enabled
// platforms, including the artificial settling latency and supersession of
// stale in-flight searches.
package search

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/history"
	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/platforms"
)

// State is the controller's lifecycle phase.
type State string

const (
	StateIdle      State = "idle"
	StateSearching State = "searching"
	StateSettled   State = "settled"
)

// DefaultSettleDelay mirrors the perceived network latency of the original
// experience. The decision itself is instant and pure; the delay only defers
// publication.
const DefaultSettleDelay = 600 * time.Millisecond

// Controller runs searches: it fans a query out to the availability engine
// once per enabled platform, holds the authoritative current result set, and
// records settled searches into the history log.
type Controller struct {
	mu        sync.Mutex
	registry  *platforms.Registry
	history   *history.Log
	log       logger.Logger
	delay     time.Duration
	afterFunc func(time.Duration, func())
	onSettled func(query string, results []domain.Result)

	state   State
	query   string
	token   string
	results []domain.Result
}

// Option configures a Controller.
type Option func(*Controller)

// WithSettleDelay overrides the artificial settling latency.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithAfterFunc replaces the timer used to schedule settling. Tests inject a
// synchronous or manually-triggered function here.
func WithAfterFunc(f func(time.Duration, func())) Option {
	return func(c *Controller) { c.afterFunc = f }
}

// WithOnSettled registers a hook fired after a non-empty search settles,
// outside the controller lock. Used for write-through persistence.
func WithOnSettled(f func(query string, results []domain.Result)) Option {
	return func(c *Controller) { c.onSettled = f }
}

// NewController creates an idle controller.
func NewController(registry *platforms.Registry, hist *history.Log, log logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		registry: registry,
		history:  hist,
		log:      log,
		delay:    DefaultSettleDelay,
		state:    StateIdle,
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit starts a search for query. A whitespace-only query settles
// immediately with an empty result set and records nothing. A non-empty query
// publishes per-platform checking placeholders and schedules settling; any
// previously in-flight search is superseded and its late results dropped.
// Returns the token identifying this submission.
func (c *Controller) Submit(query string) string {
	if strings.TrimSpace(query) == "" {
		c.mu.Lock()
		c.state = StateSettled
		c.query = query
		c.token = ""
		c.results = nil
		c.mu.Unlock()

		c.log.Debug("empty query, cleared results")
		return ""
	}

	token := uuid.NewString()
	enabled := c.registry.Enabled()

	placeholders := make([]domain.Result, 0, len(enabled))
	for _, id := range enabled {
		placeholders = append(placeholders, domain.Checking(query, c.registry.Get(id)))
	}

	c.mu.Lock()
	c.state = StateSearching
	c.query = query
	c.token = token
	c.results = placeholders
	c.mu.Unlock()

	c.log.Info("search submitted",
		logger.String("query", query),
		logger.Int("platforms", len(enabled)))

	c.afterFunc(c.delay, func() {
		c.settle(token, query, enabled)
	})
	return token
}

// settle publishes the decision results for a submission, unless a newer
// submission has superseded it in the meantime.
func (c *Controller) settle(token, query string, enabled []string) {
	computed := make([]domain.Result, 0, len(enabled))
	for _, id := range enabled {
		computed = append(computed, domain.Decide(query, c.registry.Get(id)))
	}

	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		c.log.Debug("dropping superseded search results",
			logger.String("query", query))
		return
	}
	c.state = StateSettled
	c.results = computed
	c.mu.Unlock()

	if _, ok := c.history.Record(query, enabled, computed); ok {
		c.log.Debug("history entry recorded", logger.String("query", query))
	}

	c.log.Info("search settled",
		logger.String("query", query),
		logger.Int("results", len(computed)))

	if c.onSettled != nil {
		c.onSettled(query, computed)
	}
}

// MarkOwned flips every current result whose id is in ids and whose status is
// still available to owned. Results changed by another path since the ids
// were snapshotted are left untouched. Returns the ids actually flipped.
func (c *Controller) MarkOwned(ids []string) []string {
	member := make(map[string]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var flipped []string
	for i := range c.results {
		r := &c.results[i]
		if !member[r.ID] || r.Status != domain.StatusAvailable {
			continue
		}
		r.Status = domain.StatusOwned
		r.Details = domain.Details{Message: "Owned", Meta: "Secured via Handl"}
		flipped = append(flipped, r.ID)
	}
	return flipped
}

// AvailableIDs returns the platform ids of current results with status
// available.
func (c *Controller) AvailableIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ids []string
	for _, r := range c.results {
		if r.Status == domain.StatusAvailable {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Results returns a copy of the current result set.
func (c *Controller) Results() []domain.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Result, len(c.results))
	copy(out, c.results)
	return out
}

// State returns the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Query returns the query of the most recent submission.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.query
}

// Reset returns the controller to idle, discarding results and superseding
// any in-flight settle.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateIdle
	c.query = ""
	c.token = ""
	c.results = nil
}
