package service

import (
	"path/filepath"
	"testing"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

func newTestPrefsStore(t *testing.T) *PrefsStore {
	t.Helper()
	store, err := NewPrefsStore(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("Failed to open prefs store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrefsStoreRoundtrip(t *testing.T) {
	store := newTestPrefsStore(t)

	saved := ViewPrefs{
		Filters:  Filters{StatusVigencia: model.StatusVigente, NomCredor: "alpha"},
		SortBy:   "dias_restantes",
		SortDir:  DirDesc,
		Page:     3,
		PageSize: 25,
	}
	if err := store.Save("admin", saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load("admin")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != saved {
		t.Errorf("Roundtrip mismatch:\nsaved:  %+v\nloaded: %+v", saved, loaded)
	}
}

func TestPrefsStoreMissingUserGetsDefaults(t *testing.T) {
	store := newTestPrefsStore(t)

	loaded, err := store.Load("nobody")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != DefaultPrefs() {
		t.Errorf("Expected defaults for unknown user, got %+v", loaded)
	}
}

func TestPrefsStoreUpsert(t *testing.T) {
	store := newTestPrefsStore(t)

	first := DefaultPrefs()
	first.PageSize = 50
	if err := store.Save("admin", first); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	second := DefaultPrefs()
	second.PageSize = 100
	second.SortDir = DirDesc
	if err := store.Save("admin", second); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	loaded, _ := store.Load("admin")
	if loaded.PageSize != 100 || loaded.SortDir != DirDesc {
		t.Errorf("Expected second save to win, got %+v", loaded)
	}
}

func TestPrefsStoreIsolatedPerUser(t *testing.T) {
	store := newTestPrefsStore(t)

	a := DefaultPrefs()
	a.SortBy = "val_global"
	b := DefaultPrefs()
	b.SortBy = "nom_credor"
	store.Save("alice", a)
	store.Save("bob", b)

	la, _ := store.Load("alice")
	lb, _ := store.Load("bob")
	if la.SortBy != "val_global" || lb.SortBy != "nom_credor" {
		t.Errorf("Preferences leaked across users: alice=%+v bob=%+v", la, lb)
	}
}

func TestPrefsStoreSaveNormalizesInvalidValues(t *testing.T) {
	store := newTestPrefsStore(t)

	if err := store.Save("admin", ViewPrefs{
		SortBy:   "no_such_field",
		SortDir:  "sideways",
		Page:     -4,
		PageSize: 7,
	}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, _ := store.Load("admin")
	if loaded != DefaultPrefs() {
		t.Errorf("Expected invalid values forced to defaults, got %+v", loaded)
	}
}

func TestViewPrefsNormalize(t *testing.T) {
	p := ViewPrefs{SortBy: "bogus", SortDir: "up", Page: 0, PageSize: 33}
	p.Normalize()

	if p.SortBy != string(SortNumContrato) {
		t.Errorf("Expected sort field fallback, got %q", p.SortBy)
	}
	if p.SortDir != DirAsc {
		t.Errorf("Expected asc fallback, got %q", p.SortDir)
	}
	if p.Page != 1 {
		t.Errorf("Expected page 1, got %d", p.Page)
	}
	if p.PageSize != DefaultPageSize {
		t.Errorf("Expected default page size, got %d", p.PageSize)
	}

	valid := ViewPrefs{SortBy: "val_global", SortDir: DirDesc, Page: 5, PageSize: 50}
	valid.Normalize()
	if valid.SortBy != "val_global" || valid.SortDir != DirDesc || valid.Page != 5 || valid.PageSize != 50 {
		t.Errorf("Valid prefs must pass through unchanged, got %+v", valid)
	}
}

func TestViewPrefsToggleSort(t *testing.T) {
	p := DefaultPrefs()

	// Same field flips the direction.
	p.ToggleSort("num_contrato")
	if p.SortDir != DirDesc {
		t.Errorf("Expected desc after toggle, got %q", p.SortDir)
	}
	p.ToggleSort("num_contrato")
	if p.SortDir != DirAsc {
		t.Errorf("Expected asc after second toggle, got %q", p.SortDir)
	}

	// New field starts ascending.
	p.ToggleSort("num_contrato")
	p.ToggleSort("dias_restantes")
	if p.SortBy != "dias_restantes" || p.SortDir != DirAsc {
		t.Errorf("Expected new field ascending, got %+v", p)
	}
}

func TestViewPrefsSetFiltersResetsPage(t *testing.T) {
	p := DefaultPrefs()
	p.Page = 4

	p.SetFilters(Filters{StatusVigencia: model.StatusVigente})
	if p.Page != 1 {
		t.Errorf("Expected page reset on filter change, got %d", p.Page)
	}

	// Re-applying the same criteria keeps the page.
	p.Page = 2
	p.SetFilters(Filters{StatusVigencia: model.StatusVigente})
	if p.Page != 2 {
		t.Errorf("Expected page kept for unchanged criteria, got %d", p.Page)
	}
}
