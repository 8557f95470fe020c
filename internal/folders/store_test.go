package folders

import (
	"testing"

	"github.com/handl-app/handl/internal/domain"
)

func folderByID(t *testing.T, folders []domain.Folder, id string) domain.Folder {
	t.Helper()
	for _, f := range folders {
		if f.ID == id {
			return f
		}
	}
	t.Fatalf("folder %s not found", id)
	return domain.Folder{}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Startup Ideas", "startup-ideas"},
		{"  Side   Projects  ", "side-projects"},
		{"single", "single"},
		{"MiXeD Case", "mixed-case"},
	}
	for _, tt := range tests {
		if got := Slug(tt.name); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCreateReturnsUniqueIDs(t *testing.T) {
	s := NewStore()

	first := s.Create("My Brands")
	if first != "my-brands" {
		t.Fatalf("Create() = %q, want my-brands", first)
	}

	// Same derived slug twice: the second folder must not collide.
	second := s.Create("My  Brands")
	if second == first {
		t.Fatalf("Create() reused id %q", second)
	}
	if second != "my-brands-2" {
		t.Errorf("Create() = %q, want my-brands-2", second)
	}
}

func TestSaveItem(t *testing.T) {
	s := NewStore()
	id := s.Create("Ideas")

	if !s.SaveItem("coolname", id, domain.KindBusiness) {
		t.Fatal("SaveItem() = false, want true")
	}

	// Duplicate handle in the same folder is a no-op.
	if s.SaveItem("coolname", id, domain.KindProject) {
		t.Error("SaveItem() duplicate = true, want false")
	}

	// Unknown folder is a no-op.
	if s.SaveItem("coolname", "missing", domain.KindBusiness) {
		t.Error("SaveItem() unknown folder = true, want false")
	}

	// System folders own no item sequence.
	if s.SaveItem("coolname", domain.FolderBusiness, domain.KindBusiness) {
		t.Error("SaveItem() system folder = true, want false")
	}

	folder := folderByID(t, s.WithCounts(), id)
	if folder.Count != 1 || len(folder.Items) != 1 {
		t.Errorf("folder count = %d, items = %d, want 1/1", folder.Count, len(folder.Items))
	}
}

func TestWithCountsAggregates(t *testing.T) {
	s := NewStore()
	a := s.Create("Folder A")
	b := s.Create("Folder B")

	s.SaveItem("biz-one", a, domain.KindBusiness)
	s.SaveItem("biz-two", b, domain.KindBusiness)
	s.SaveItem("proj-one", b, domain.KindProject)

	counted := s.WithCounts()

	// Seed folder carries one business and one project item.
	if got := folderByID(t, counted, domain.FolderBusiness).Count; got != 3 {
		t.Errorf("business count = %d, want 3", got)
	}
	if got := folderByID(t, counted, domain.FolderProjects).Count; got != 2 {
		t.Errorf("projects count = %d, want 2", got)
	}
	if got := folderByID(t, counted, domain.FolderHandles).Count; got != 5 {
		t.Errorf("handles count = %d, want 5", got)
	}
	if got := folderByID(t, counted, b).Count; got != 2 {
		t.Errorf("user folder count = %d, want 2", got)
	}
}

func TestHandlesCountEqualsBusinessPlusProjects(t *testing.T) {
	s := NewStore()
	a := s.Create("One")
	b := s.Create("Two")

	saves := []struct {
		handle string
		folder string
		kind   domain.ItemKind
	}{
		{"h1", a, domain.KindBusiness},
		{"h2", a, domain.KindProject},
		{"h3", b, domain.KindProject},
		{"h1", b, domain.KindBusiness}, // same handle, different folder: allowed
		{"h1", a, domain.KindProject},  // duplicate in a: no-op
	}

	for _, sv := range saves {
		s.SaveItem(sv.handle, sv.folder, sv.kind)

		counted := s.WithCounts()
		business := folderByID(t, counted, domain.FolderBusiness).Count
		projects := folderByID(t, counted, domain.FolderProjects).Count
		handles := folderByID(t, counted, domain.FolderHandles).Count
		if handles != business+projects {
			t.Fatalf("handles = %d, business+projects = %d", handles, business+projects)
		}
	}
}

func TestWithCountsDoesNotMutateState(t *testing.T) {
	s := NewStore()
	id := s.Create("Ideas")
	s.SaveItem("one", id, domain.KindBusiness)

	first := folderByID(t, s.WithCounts(), domain.FolderHandles).Count
	second := folderByID(t, s.WithCounts(), domain.FolderHandles).Count
	if first != second {
		t.Errorf("WithCounts() drifted: %d then %d", first, second)
	}

	// Stored system folder must stay count-free.
	stored := folderByID(t, s.Snapshot(), domain.FolderHandles)
	if stored.Count != 0 {
		t.Errorf("stored handles count = %d, want 0 (derived only)", stored.Count)
	}
}

func TestGetFallsBackToDashboard(t *testing.T) {
	s := NewStore()

	if got := s.Get("demo-folder"); got.Name != "Startup Ideas" {
		t.Errorf("Get(demo-folder).Name = %q", got.Name)
	}
	if got := s.Get("deleted-folder"); got.ID != domain.FolderDashboard {
		t.Errorf("Get(missing) = %q, want dashboard fallback", got.ID)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := NewStore()
	id := s.Create("Keep Me")
	s.SaveItem("kept", id, domain.KindProject)

	snap := s.Snapshot()

	other := NewStore()
	other.Restore(snap)

	folder := folderByID(t, other.WithCounts(), id)
	if folder.Count != 1 || folder.Items[0].Handle != "kept" {
		t.Errorf("restored folder = %+v", folder)
	}

	// Empty snapshot keeps defaults.
	fresh := NewStore()
	fresh.Restore(nil)
	if len(fresh.Snapshot()) == 0 {
		t.Error("Restore(nil) wiped defaults")
	}
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.Create("Temp")
	s.Reset()

	for _, f := range s.Snapshot() {
		if f.ID == "temp" {
			t.Error("Reset() kept user folder")
		}
	}
	if got := s.Get("demo-folder"); got.Name != "Startup Ideas" {
		t.Error("Reset() did not reinstate seed folder")
	}
}
