package search

import (
	"testing"
	"time"

	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/history"
	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/platforms"
)

// syncTimer runs the scheduled settle immediately, making searches
// synchronous from the test's point of view.
func syncTimer(_ time.Duration, fn func()) { fn() }

// manualTimer captures scheduled settles so tests control when they fire.
type manualTimer struct {
	pending []func()
}

func (m *manualTimer) afterFunc(_ time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
}

func (m *manualTimer) fire() {
	for _, fn := range m.pending {
		fn()
	}
	m.pending = nil
}

func newTestController(t *testing.T, opts ...Option) (*Controller, *history.Log) {
	t.Helper()
	reg := platforms.NewRegistry(domain.DefaultPlatforms, domain.DefaultEnabledPlatformIDs)
	hist := history.NewLog(0)
	opts = append([]Option{WithAfterFunc(syncTimer)}, opts...)
	return NewController(reg, hist, logger.NewNop(), opts...), hist
}

func TestSubmitSettlesWithResults(t *testing.T) {
	c, hist := newTestController(t)

	c.Submit("validuser")

	if c.State() != StateSettled {
		t.Fatalf("state = %s, want settled", c.State())
	}

	results := c.Results()
	if len(results) != len(domain.DefaultEnabledPlatformIDs) {
		t.Fatalf("results = %d, want %d", len(results), len(domain.DefaultEnabledPlatformIDs))
	}
	for i, id := range domain.DefaultEnabledPlatformIDs {
		if results[i].ID != id {
			t.Errorf("results[%d].ID = %s, want %s (enabled order)", i, results[i].ID, id)
		}
		if results[i].Status == domain.StatusChecking {
			t.Errorf("results[%d] still checking after settle", i)
		}
	}

	if hist.Len() != 1 {
		t.Errorf("history entries = %d, want 1", hist.Len())
	}
}

func TestSubmitEmptyQuery(t *testing.T) {
	c, hist := newTestController(t)
	c.Submit("validuser")

	token := c.Submit("   ")
	if token != "" {
		t.Errorf("token = %q, want empty", token)
	}
	if c.State() != StateSettled {
		t.Errorf("state = %s, want settled", c.State())
	}
	if len(c.Results()) != 0 {
		t.Errorf("results = %v, want empty", c.Results())
	}
	if hist.Len() != 1 {
		t.Errorf("history entries = %d, want 1 (empty query not recorded)", hist.Len())
	}
}

func TestCheckingPlaceholdersDuringSearch(t *testing.T) {
	timers := &manualTimer{}
	c, _ := newTestController(t, WithAfterFunc(timers.afterFunc))

	c.Submit("validuser")

	if c.State() != StateSearching {
		t.Fatalf("state = %s, want searching", c.State())
	}
	for _, r := range c.Results() {
		if r.Status != domain.StatusChecking {
			t.Errorf("result %s status = %s, want checking", r.ID, r.Status)
		}
	}

	timers.fire()
	if c.State() != StateSettled {
		t.Errorf("state after fire = %s, want settled", c.State())
	}
}

func TestStaleSearchCannotOverwriteNewer(t *testing.T) {
	timers := &manualTimer{}
	c, hist := newTestController(t, WithAfterFunc(timers.afterFunc))

	c.Submit("oldquery")
	slow := timers.pending
	timers.pending = nil

	c.Submit("newquery")
	timers.fire() // newquery settles first

	// The slow, superseded oldquery settle fires afterwards.
	for _, fn := range slow {
		fn()
	}

	if c.Query() != "newquery" {
		t.Errorf("query = %q, want newquery", c.Query())
	}
	for _, r := range c.Results() {
		if r.URL != domain.ProfileURL(r.Name, "newquery") {
			t.Errorf("result url %q belongs to the stale search", r.URL)
		}
	}
	// The superseded search never settled, so it was not recorded.
	if hist.Len() != 1 {
		t.Errorf("history entries = %d, want 1", hist.Len())
	}
}

func TestDuplicateQueryNotRerecorded(t *testing.T) {
	c, hist := newTestController(t)

	c.Submit("validuser")
	c.Submit("validuser")

	if hist.Len() != 1 {
		t.Errorf("history entries = %d, want 1", hist.Len())
	}
}

func TestMarkOwnedRevalidatesStatus(t *testing.T) {
	c, _ := newTestController(t)
	c.Submit("validuser") // available on all four default platforms

	// Another path flips instagram first.
	c.MarkOwned([]string{"instagram"})

	flipped := c.MarkOwned([]string{"twitter", "instagram"})
	if len(flipped) != 1 || flipped[0] != "twitter" {
		t.Fatalf("flipped = %v, want [twitter]", flipped)
	}

	for _, r := range c.Results() {
		switch r.ID {
		case "twitter", "instagram":
			if r.Status != domain.StatusOwned {
				t.Errorf("%s status = %s, want owned", r.ID, r.Status)
			}
			if r.Details.Message != "Owned" {
				t.Errorf("%s message = %q", r.ID, r.Details.Message)
			}
		default:
			if r.Status == domain.StatusOwned {
				t.Errorf("%s unexpectedly owned", r.ID)
			}
		}
	}
}

func TestMarkOwnedIgnoresTaken(t *testing.T) {
	c, _ := newTestController(t)
	c.Submit("abcd") // taken on twitter (too short for its rule)

	flipped := c.MarkOwned([]string{"twitter"})
	if len(flipped) != 0 {
		t.Errorf("flipped = %v, want none", flipped)
	}
}

func TestOnSettledHook(t *testing.T) {
	var gotQuery string
	var gotResults []domain.Result
	c, _ := newTestController(t, WithOnSettled(func(q string, rs []domain.Result) {
		gotQuery = q
		gotResults = rs
	}))

	c.Submit("validuser")

	if gotQuery != "validuser" {
		t.Errorf("hook query = %q", gotQuery)
	}
	if len(gotResults) != len(domain.DefaultEnabledPlatformIDs) {
		t.Errorf("hook results = %d", len(gotResults))
	}
}

func TestReset(t *testing.T) {
	c, _ := newTestController(t)
	c.Submit("validuser")

	c.Reset()
	if c.State() != StateIdle {
		t.Errorf("state = %s, want idle", c.State())
	}
	if len(c.Results()) != 0 {
		t.Errorf("results = %v, want empty", c.Results())
	}
}
