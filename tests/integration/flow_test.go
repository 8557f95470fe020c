package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/handl-app/handl/internal/claim"
	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/folders"
	"github.com/handl-app/handl/internal/history"
	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/httpserver/routes"
	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/platforms"
	"github.com/handl-app/handl/internal/search"
	"github.com/handl-app/handl/internal/state"
	"github.com/handl-app/handl/internal/suggest"
)

// syncTimer fires scheduled callbacks immediately, collapsing the artificial
// latencies so a full flow runs synchronously.
func syncTimer(_ time.Duration, fn func()) { fn() }

type fixture struct {
	registry   *platforms.Registry
	folders    *folders.Store
	history    *history.Log
	controller *search.Controller
	workflow   *claim.Workflow
}

func newFixture() *fixture {
	log := logger.NewNop()
	registry := platforms.NewRegistry(domain.DefaultPlatforms, domain.DefaultEnabledPlatformIDs)
	folderStore := folders.NewStore()
	historyLog := history.NewLog(history.DefaultCap)
	controller := search.NewController(registry, historyLog, log,
		search.WithAfterFunc(syncTimer))
	workflow := claim.NewWorkflow(controller, log,
		claim.WithAfterFunc(syncTimer))
	return &fixture{
		registry:   registry,
		folders:    folderStore,
		history:    historyLog,
		controller: controller,
		workflow:   workflow,
	}
}

// TestSearchClaimSaveFlow drives the full journey: search a handle, claim the
// available platforms, file it into a folder, and verify the history trail.
func TestSearchClaimSaveFlow(t *testing.T) {
	f := newFixture()

	// validuser is available on every default platform.
	f.controller.Submit("validuser")
	if got := f.controller.State(); got != search.StateSettled {
		t.Fatalf("State() = %q, want %q", got, search.StateSettled)
	}

	available := f.controller.AvailableIDs()
	if len(available) != len(domain.DefaultEnabledPlatformIDs) {
		t.Fatalf("AvailableIDs() = %v, want all %d enabled platforms",
			available, len(domain.DefaultEnabledPlatformIDs))
	}

	pending, err := f.workflow.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(pending) != len(available) {
		t.Fatalf("Start() pending = %v, want %v", pending, available)
	}
	if err := f.workflow.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if got := f.workflow.Phase(); got != claim.PhaseSuccess {
		t.Fatalf("Phase() = %q, want %q", got, claim.PhaseSuccess)
	}

	for _, res := range f.controller.Results() {
		if res.Status != domain.StatusOwned {
			t.Errorf("result %s status = %q, want %q", res.ID, res.Status, domain.StatusOwned)
		}
		if res.Details.Message != "Owned" {
			t.Errorf("result %s details = %q, want Owned", res.ID, res.Details.Message)
		}
	}

	folderID := f.folders.Create("My Brands")
	if !f.folders.SaveItem("validuser", folderID, domain.KindBusiness) {
		t.Fatal("SaveItem() = false, want true")
	}
	folder := f.folders.Get(folderID)
	if folder.Count != 1 || folder.Items[0].Handle != "validuser" {
		t.Fatalf("folder = %+v, want one validuser item", folder)
	}

	items := f.history.Items()
	if len(items) != 1 {
		t.Fatalf("history Items() = %d entries, want 1", len(items))
	}
	entry := items[0]
	if entry.Query != "validuser" {
		t.Errorf("history query = %q, want validuser", entry.Query)
	}
	if entry.AvailableCount != len(available) || entry.TotalCount != len(available) {
		t.Errorf("history counts = %d/%d, want %d/%d",
			entry.AvailableCount, entry.TotalCount, len(available), len(available))
	}

	csv := string(f.history.ExportCSV())
	if !strings.HasPrefix(csv, "Timestamp,Handle,Available,Total") {
		t.Errorf("ExportCSV() missing header: %q", csv)
	}
	if !strings.Contains(csv, "validuser") {
		t.Errorf("ExportCSV() missing entry: %q", csv)
	}
}

// TestSupersededSearchNeverLands starts a claim from one search, then runs a
// fresh search before completion; the stale claim must not flip the new set.
func TestSupersededSearchNeverLands(t *testing.T) {
	log := logger.NewNop()
	registry := platforms.NewRegistry(domain.DefaultPlatforms, domain.DefaultEnabledPlatformIDs)
	historyLog := history.NewLog(history.DefaultCap)

	var pendingSettles []func()
	controller := search.NewController(registry, historyLog, log,
		search.WithAfterFunc(func(_ time.Duration, fn func()) {
			pendingSettles = append(pendingSettles, fn)
		}))

	controller.Submit("validuser")
	controller.Submit("anotherone")
	for _, fn := range pendingSettles {
		fn()
	}

	if got := controller.Query(); got != "anotherone" {
		t.Fatalf("Query() = %q, want anotherone", got)
	}
	// Only the surviving search may reach history.
	if got := historyLog.Len(); got != 1 {
		t.Fatalf("history Len() = %d, want 1", got)
	}
	if historyLog.Items()[0].Query != "anotherone" {
		t.Fatalf("history query = %q, want anotherone", historyLog.Items()[0].Query)
	}
}

// TestHTTPFlow exercises the same journey through the registered routes.
func TestHTTPFlow(t *testing.T) {
	f := newFixture()
	log := logger.NewNop()

	d := deps.Deps{
		Logger:    log,
		StartTime: time.Now(),
		TimeNow:   time.Now,
		Platforms: f.registry,
		Folders:   f.folders,
		History:   f.history,
		Search:    f.controller,
		Claim:     f.workflow,
		Suggest:   suggest.NewClient("", "", time.Second, log),
		Theme:     state.NewThemeHolder(),
	}

	r := chi.NewRouter()
	routes.RegisterAll(r, d)
	srv := httptest.NewServer(r)
	defer srv.Close()

	post := func(path, body string) *http.Response {
		t.Helper()
		resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST %s error = %v", path, err)
		}
		return resp
	}

	resp := post("/api/search", `{"query":"validuser"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("POST /api/search status = %d, want 202", resp.StatusCode)
	}
	var searchBody struct {
		State   string          `json:"state"`
		Results []domain.Result `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchBody); err != nil {
		t.Fatalf("decode search response: %v", err)
	}
	_ = resp.Body.Close()
	// The synchronous timer settles before the handler snapshots state.
	if searchBody.State != string(search.StateSettled) {
		t.Fatalf("search state = %q, want settled", searchBody.State)
	}

	resp = post("/api/claim", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /api/claim status = %d, want 200", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = post("/api/claim/confirm", "")
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("POST /api/claim/confirm status = %d, want 202", resp.StatusCode)
	}
	_ = resp.Body.Close()

	if got := f.workflow.Phase(); got != claim.PhaseSuccess {
		t.Fatalf("Phase() after confirm = %q, want %q", got, claim.PhaseSuccess)
	}

	resp = post("/api/folders", `{"name":"Side Projects"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /api/folders status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode folder response: %v", err)
	}
	_ = resp.Body.Close()
	if created.ID != "side-projects" {
		t.Fatalf("folder id = %q, want side-projects", created.ID)
	}

	resp = post("/api/folders/"+created.ID+"/items", `{"handle":"validuser","type":"project"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST save item status = %d, want 200", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/history/export")
	if err != nil {
		t.Fatalf("GET /api/history/export error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/history/export status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("export content type = %q, want text/csv", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "handl_history.csv") {
		t.Errorf("export disposition = %q, want handl_history.csv attachment", cd)
	}
	_ = resp.Body.Close()
}
