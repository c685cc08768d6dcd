// Package history keeps a local record of analyses so they can be searched
// and compared later.
//
// It uses SQLite (pure Go driver) with an FTS5 index over the concept
// text, pattern and AI type. The analysis engine itself never touches this
// package; hosts decide whether to save a result.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrNotFound is returned by Get and Delete for unknown IDs.
var ErrNotFound = errors.New("history: record not found")

// ─── Types ───────────────────────────────────────────────────────────────────

// Record is a saved analysis summary.
type Record struct {
	ID         string `json:"id"`
	Concept    string `json:"concept"`
	Industry   string `json:"industry"`
	Pattern    string `json:"pattern"`
	AIType     string `json:"ai_type"`
	Visibility string `json:"visibility"`
	Score      int    `json:"score"`
	Level      string `json:"level"`
	CreatedAt  string `json:"created_at"`
}

// Entry is a Record with the full stored result.
type Entry struct {
	Record
	Result analysis.Result `json:"result"`
}

// SearchOptions holds filters for Search.
type SearchOptions struct {
	Industry string `json:"industry,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Level    string `json:"level,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// Stats holds aggregate history statistics.
type Stats struct {
	Total        int            `json:"total"`
	AverageScore float64        `json:"average_score"`
	ByPattern    map[string]int `json:"by_pattern"`
	ByLevel      map[string]int `json:"by_level"`
	ByIndustry   map[string]int `json:"by_industry"`
}

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds store configuration.
type Config struct {
	DataDir          string
	MaxSearchResults int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:          filepath.Join(home, ".flowsmith"),
		MaxSearchResults: 20,
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the analysis history backed by SQLite + FTS5.
type Store struct {
	db  *sql.DB
	cfg Config
	now func() time.Time
}

// New creates the data directory if needed, opens SQLite in WAL mode and
// runs migrations.
func New(cfg Config) (*Store, error) {
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = DefaultConfig().MaxSearchResults
	}
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "history.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS analyses (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			id          TEXT    NOT NULL UNIQUE,
			concept     TEXT    NOT NULL,
			industry    TEXT    NOT NULL,
			pattern     TEXT    NOT NULL,
			ai_type     TEXT    NOT NULL,
			visibility  TEXT    NOT NULL,
			score       INTEGER NOT NULL,
			level       TEXT    NOT NULL,
			result_json TEXT    NOT NULL,
			created_at  TEXT    NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_analyses_industry ON analyses(industry);
		CREATE INDEX IF NOT EXISTS idx_analyses_pattern  ON analyses(pattern);
		CREATE INDEX IF NOT EXISTS idx_analyses_created  ON analyses(created_at DESC);

		CREATE VIRTUAL TABLE IF NOT EXISTS analyses_fts USING fts5(
			concept,
			pattern,
			ai_type,
			content='analyses',
			content_rowid='seq'
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='trigger' AND name='analyses_fts_insert'",
	).Scan(&name)
	if err == sql.ErrNoRows {
		_, err = s.db.Exec(`
			CREATE TRIGGER analyses_fts_insert AFTER INSERT ON analyses BEGIN
				INSERT INTO analyses_fts(rowid, concept, pattern, ai_type)
				VALUES (new.seq, new.concept, new.pattern, new.ai_type);
			END;

			CREATE TRIGGER analyses_fts_delete AFTER DELETE ON analyses BEGIN
				INSERT INTO analyses_fts(analyses_fts, rowid, concept, pattern, ai_type)
				VALUES ('delete', old.seq, old.concept, old.pattern, old.ai_type);
			END;
		`)
	}
	return err
}

// ─── Writes ──────────────────────────────────────────────────────────────────

// Save stores a result and returns its new ID.
func (s *Store) Save(r analysis.Result) (string, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("history: encode result: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO analyses (id, concept, industry, pattern, ai_type, visibility, score, level, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.Concept, string(r.Industry), string(r.Pattern),
		r.Classification.AIType, string(r.Classification.Visibility),
		r.Complexity.Score, string(r.Complexity.Level),
		string(payload), s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("history: save: %w", err)
	}
	return id, nil
}

// Delete removes a record.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM analyses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("history: delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ─── Reads ───────────────────────────────────────────────────────────────────

const recordColumns = `a.id, a.concept, a.industry, a.pattern, a.ai_type, a.visibility, a.score, a.level, a.created_at`

// Get returns one record with its full result.
func (s *Store) Get(id string) (*Entry, error) {
	var e Entry
	var payload string
	err := s.db.QueryRow(`SELECT `+recordColumns+`, a.result_json FROM analyses a WHERE a.id = ?`, id).Scan(
		&e.ID, &e.Concept, &e.Industry, &e.Pattern, &e.AIType, &e.Visibility,
		&e.Score, &e.Level, &e.CreatedAt, &payload,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("history: get: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &e.Result); err != nil {
		return nil, fmt.Errorf("history: decode result %s: %w", id, err)
	}
	return &e, nil
}

// Recent returns the newest records, optionally for one industry.
func (s *Store) Recent(industry string, limit int) ([]Record, error) {
	return s.Search("", SearchOptions{Industry: industry, Limit: limit})
}

// Search runs a full-text query over concept, pattern and AI type. An
// empty query lists recent records with the same filters.
func (s *Store) Search(query string, opts SearchOptions) ([]Record, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > s.cfg.MaxSearchResults {
		limit = s.cfg.MaxSearchResults
	}

	from, args, ranked := buildFilter(query, opts)
	order := " ORDER BY a.seq DESC"
	if ranked {
		order = " ORDER BY fts.rank"
	}

	rows, err := s.db.Query(`SELECT `+recordColumns+from+order+` LIMIT ?`, append(args, limit)...)
	if err != nil {
		return nil, fmt.Errorf("history: search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Concept, &r.Industry, &r.Pattern, &r.AIType,
			&r.Visibility, &r.Score, &r.Level, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns how many records Search would find without a limit.
func (s *Store) Count(query string, opts SearchOptions) (int, error) {
	from, args, _ := buildFilter(query, opts)
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*)`+from, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("history: count: %w", err)
	}
	return n, nil
}

// buildFilter returns the FROM/WHERE tail shared by Search and Count, and
// whether it joins the FTS index.
func buildFilter(query string, opts SearchOptions) (string, []any, bool) {
	var (
		b    strings.Builder
		args []any
	)
	ftsQuery := sanitizeFTS(query)
	if ftsQuery == "" {
		b.WriteString(` FROM analyses a WHERE 1 = 1`)
	} else {
		b.WriteString(` FROM analyses_fts fts JOIN analyses a ON a.seq = fts.rowid WHERE analyses_fts MATCH ?`)
		args = append(args, ftsQuery)
	}
	for _, f := range []struct{ col, val string }{
		{"a.industry", opts.Industry},
		{"a.pattern", opts.Pattern},
		{"a.level", opts.Level},
	} {
		if f.val != "" {
			b.WriteString(" AND " + f.col + " = ?")
			args = append(args, f.val)
		}
	}
	return b.String(), args, ftsQuery != ""
}

// Stats aggregates the whole history.
func (s *Store) Stats() (*Stats, error) {
	st := &Stats{
		ByPattern:  map[string]int{},
		ByLevel:    map[string]int{},
		ByIndustry: map[string]int{},
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRow(`SELECT COUNT(*), AVG(score) FROM analyses`).Scan(&st.Total, &avg); err != nil {
		return nil, fmt.Errorf("history: stats: %w", err)
	}
	st.AverageScore = avg.Float64

	for col, dst := range map[string]map[string]int{
		"pattern":  st.ByPattern,
		"level":    st.ByLevel,
		"industry": st.ByIndustry,
	} {
		if err := s.countBy(col, dst); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (s *Store) countBy(column string, dst map[string]int) error {
	rows, err := s.db.Query(`SELECT ` + column + `, COUNT(*) FROM analyses GROUP BY ` + column)
	if err != nil {
		return fmt.Errorf("history: count by %s: %w", column, err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var k string
		var n int
		if err := rows.Scan(&k, &n); err != nil {
			return err
		}
		dst[k] = n
	}
	return rows.Err()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// Truncate fits s into max display columns, ending in "..." when cut.
// It never splits a multi-byte character.
func Truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "...")
}

// sanitizeFTS quotes each word so FTS5 operators in user input are
// treated as literals.
func sanitizeFTS(query string) string {
	words := strings.Fields(query)
	for i, w := range words {
		w = strings.ReplaceAll(w, `"`, "")
		words[i] = `"` + w + `"`
	}
	return strings.Join(words, " ")
}
