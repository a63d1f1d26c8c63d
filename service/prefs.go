package service

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Default pagination settings
const (
	DefaultPageSize = 10
)

var allowedPageSizes = []int{10, 25, 50, 100}

// ViewPrefs is the persisted view state for one user: filter criteria, sort
// spec and pagination. It survives reloads and is validated on the way in
// and out.
type ViewPrefs struct {
	Filters  Filters `json:"filters"`
	SortBy   string  `json:"sort_by"`
	SortDir  string  `json:"sort_dir"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

func DefaultPrefs() ViewPrefs {
	return ViewPrefs{
		SortBy:   string(SortNumContrato),
		SortDir:  DirAsc,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Normalize forces every field into its valid range, defaulting anything
// malformed or missing.
func (p *ViewPrefs) Normalize() {
	p.SortBy = string(ParseSortField(p.SortBy))
	if p.SortDir != DirAsc && p.SortDir != DirDesc {
		p.SortDir = DirAsc
	}
	if p.Page < 1 {
		p.Page = 1
	}
	valid := false
	for _, s := range allowedPageSizes {
		if p.PageSize == s {
			valid = true
			break
		}
	}
	if !valid {
		p.PageSize = DefaultPageSize
	}
}

// ToggleSort applies the sort-toggle policy: selecting the active field flips
// the direction, selecting a different field switches to it ascending.
func (p *ViewPrefs) ToggleSort(field string) {
	field = string(ParseSortField(field))
	if p.SortBy == field {
		if p.SortDir == DirAsc {
			p.SortDir = DirDesc
		} else {
			p.SortDir = DirAsc
		}
		return
	}
	p.SortBy = field
	p.SortDir = DirAsc
}

// SetFilters replaces the criteria set. Any change resets the page to 1.
func (p *ViewPrefs) SetFilters(f Filters) {
	if p.Filters != f {
		p.Page = 1
	}
	p.Filters = f
}

// PrefsStore persists per-user view preferences in SQLite.
type PrefsStore struct {
	db *sql.DB
}

func NewPrefsStore(path string) (*PrefsStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS view_prefs (
		username   TEXT PRIMARY KEY,
		filters    TEXT NOT NULL DEFAULT '{}',
		sort_by    TEXT NOT NULL DEFAULT 'num_contrato',
		sort_dir   TEXT NOT NULL DEFAULT 'asc',
		page       INTEGER NOT NULL DEFAULT 1,
		page_size  INTEGER NOT NULL DEFAULT 10,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create prefs schema: %w", err)
	}
	return &PrefsStore{db: db}, nil
}

func (s *PrefsStore) Close() error {
	return s.db.Close()
}

// Load returns the stored preferences for username, or defaults when the user
// has none. Malformed stored values are normalized, never surfaced.
func (s *PrefsStore) Load(username string) (ViewPrefs, error) {
	prefs := DefaultPrefs()

	var filtersJSON string
	row := s.db.QueryRow(
		`SELECT filters, sort_by, sort_dir, page, page_size FROM view_prefs WHERE username = ?`,
		username,
	)
	err := row.Scan(&filtersJSON, &prefs.SortBy, &prefs.SortDir, &prefs.Page, &prefs.PageSize)
	if err == sql.ErrNoRows {
		return prefs, nil
	}
	if err != nil {
		return DefaultPrefs(), err
	}

	if jsonErr := json.Unmarshal([]byte(filtersJSON), &prefs.Filters); jsonErr != nil {
		prefs.Filters = Filters{}
	}
	prefs.Normalize()
	return prefs, nil
}

// Save upserts the preferences for username, normalizing first.
func (s *PrefsStore) Save(username string, prefs ViewPrefs) error {
	prefs.Normalize()

	filtersJSON, err := json.Marshal(prefs.Filters)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO view_prefs (username, filters, sort_by, sort_dir, page, page_size, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(username) DO UPDATE SET
			filters = excluded.filters,
			sort_by = excluded.sort_by,
			sort_dir = excluded.sort_dir,
			page = excluded.page,
			page_size = excluded.page_size,
			updated_at = CURRENT_TIMESTAMP`,
		username, string(filtersJSON), prefs.SortBy, prefs.SortDir, prefs.Page, prefs.PageSize,
	)
	return err
}
