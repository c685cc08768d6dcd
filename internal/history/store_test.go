package history_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/HendryAvila/flowsmith/internal/analysis"
	"github.com/HendryAvila/flowsmith/internal/history"
	"github.com/mattn/go-runewidth"
)

var engine = analysis.MustDefault()

// newTestStore creates a Store backed by a temp directory for isolation.
func newTestStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.New(history.Config{DataDir: t.TempDir(), MaxSearchResults: 20})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func save(t *testing.T, s *history.Store, concept, industry string) string {
	t.Helper()
	id, err := s.Save(engine.Analyze(concept, industry))
	if err != nil {
		t.Fatalf("Save(%q) error: %v", concept, err)
	}
	return id
}

// ─── New ─────────────────────────────────────────────────────────────────────

func TestNew_IdempotentReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := history.Config{DataDir: dir}

	s1, err := history.New(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	id := save(t, s1, "Auto-approve PTO requests", "hcm")
	s1.Close()

	s2, err := history.New(cfg)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	e, err := s2.Get(id)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if e.Concept != "Auto-approve PTO requests" {
		t.Errorf("Concept = %q", e.Concept)
	}
}

func TestNew_WALMode(t *testing.T) {
	s := newTestStore(t)
	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestNew_DataDirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := history.New(history.Config{DataDir: blocker}); err == nil {
		t.Error("New() should fail when the data dir is a regular file")
	}
}

// ─── Save / Get ──────────────────────────────────────────────────────────────

func TestSaveGet_RoundTripsResult(t *testing.T) {
	s := newTestStore(t)
	id := save(t, s, "Detect fraudulent transactions and flag for review", "finance")

	e, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if e.Pattern != "anomalyDetection" {
		t.Errorf("Pattern = %q, want anomalyDetection", e.Pattern)
	}
	if e.AIType != "Anomaly Detection ML" {
		t.Errorf("AIType = %q", e.AIType)
	}
	if e.Industry != "finance" {
		t.Errorf("Industry = %q", e.Industry)
	}
	if e.Result.Workflow.Objects[1].Name != "Journal Entry" {
		t.Errorf("stored workflow lost overlay names: %+v", e.Result.Workflow.Objects)
	}
	if e.Score != e.Result.Complexity.Score {
		t.Errorf("Score column %d != result score %d", e.Score, e.Result.Complexity.Score)
	}
}

func TestSave_UsesClock(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return fixed })

	e, err := s.Get(save(t, s, "Forecast headcount", "hcm"))
	if err != nil {
		t.Fatal(err)
	}
	if e.CreatedAt != fixed.Format(time.RFC3339Nano) {
		t.Errorf("CreatedAt = %q", e.CreatedAt)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("missing"); !errors.Is(err, history.ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

// ─── Recent / Search ─────────────────────────────────────────────────────────

func TestRecent_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	save(t, s, "Auto-approve PTO requests", "hcm")
	save(t, s, "Forecast overtime", "hcm")
	last := save(t, s, "Chat assistant for vendors", "finance")

	recs, err := s.Recent("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("Recent() returned %d records, want 3", len(recs))
	}
	if recs[0].ID != last {
		t.Errorf("first record = %s, want newest %s", recs[0].ID, last)
	}

	hcm, err := s.Recent("hcm", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hcm) != 2 {
		t.Errorf("Recent(hcm) returned %d, want 2", len(hcm))
	}
}

func TestSearch_FullText(t *testing.T) {
	s := newTestStore(t)
	save(t, s, "Auto-approve PTO requests", "hcm")
	save(t, s, "Detect duplicate invoices", "finance")

	recs, err := s.Search("invoices", history.SearchOptions{})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(recs) != 1 || recs[0].Concept != "Detect duplicate invoices" {
		t.Errorf("Search(invoices) = %+v", recs)
	}

	recs, err = s.Search("autoApproval", history.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Industry != "hcm" {
		t.Errorf("Search by pattern key = %+v", recs)
	}
}

func TestSearch_OperatorsAreLiteral(t *testing.T) {
	s := newTestStore(t)
	save(t, s, "Auto-approve PTO requests", "hcm")

	// Raw FTS5 syntax would be a parse error without sanitizing.
	if _, err := s.Search(`pto AND (" OR`, history.SearchOptions{}); err != nil {
		t.Errorf("Search with operators should not error: %v", err)
	}
}

func TestSearch_Filters(t *testing.T) {
	s := newTestStore(t)
	save(t, s, "Detect fraud in expense reports", "finance")
	save(t, s, "Detect absence anomalies", "hcm")

	recs, err := s.Search("detect", history.SearchOptions{Industry: "hcm"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Industry != "hcm" {
		t.Errorf("industry filter = %+v", recs)
	}

	recs, err = s.Search("", history.SearchOptions{Pattern: "anomalyDetection"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Errorf("pattern filter returned %d, want 2", len(recs))
	}
}

func TestSearch_LimitCappedByConfig(t *testing.T) {
	s, err := history.New(history.Config{DataDir: t.TempDir(), MaxSearchResults: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	for i := 0; i < 4; i++ {
		save(t, s, "Forecast demand", "generic")
	}
	recs, err := s.Search("", history.SearchOptions{Limit: 50})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Errorf("got %d records, want cap of 2", len(recs))
	}

	n, err := s.Count("", history.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("Count() = %d, want 4 regardless of the cap", n)
	}
}

func TestCount_MatchesSearchFilters(t *testing.T) {
	s := newTestStore(t)
	save(t, s, "Detect fraud in expense reports", "finance")
	save(t, s, "Detect absence anomalies", "hcm")
	save(t, s, "Forecast headcount", "hcm")

	tests := []struct {
		query string
		opts  history.SearchOptions
		want  int
	}{
		{"", history.SearchOptions{}, 3},
		{"detect", history.SearchOptions{}, 2},
		{"detect", history.SearchOptions{Industry: "hcm"}, 1},
		{"", history.SearchOptions{Industry: "hcm"}, 2},
		{"nothing-here", history.SearchOptions{}, 0},
	}
	for _, tt := range tests {
		n, err := s.Count(tt.query, tt.opts)
		if err != nil {
			t.Fatalf("Count(%q) error: %v", tt.query, err)
		}
		if n != tt.want {
			t.Errorf("Count(%q, %+v) = %d, want %d", tt.query, tt.opts, n, tt.want)
		}
	}
}

// ─── Stats / Delete ──────────────────────────────────────────────────────────

func TestStats(t *testing.T) {
	s := newTestStore(t)

	st, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Total != 0 || st.AverageScore != 0 {
		t.Errorf("empty stats = %+v", st)
	}

	save(t, s, "Auto-approve PTO requests with team coverage validation", "hcm")
	save(t, s, "Auto-approve expense reports", "finance")

	st, err = s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Total != 2 {
		t.Errorf("Total = %d, want 2", st.Total)
	}
	if st.ByPattern["autoApproval"] != 2 {
		t.Errorf("ByPattern = %v", st.ByPattern)
	}
	if st.ByIndustry["hcm"] != 1 || st.ByIndustry["finance"] != 1 {
		t.Errorf("ByIndustry = %v", st.ByIndustry)
	}
	if st.AverageScore <= 0 {
		t.Errorf("AverageScore = %v", st.AverageScore)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	id := save(t, s, "Detect duplicate invoices", "finance")

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := s.Get(id); !errors.Is(err, history.ErrNotFound) {
		t.Errorf("Get after delete = %v", err)
	}
	recs, err := s.Search("invoices", history.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("FTS index still returns deleted record: %+v", recs)
	}
	if err := s.Delete(id); !errors.Is(err, history.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func TestSanitizeFTS(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"pto", `"pto"`},
		{`fraud "risk"`, `"fraud" "risk"`},
		{"a OR b", `"a" "OR" "b"`},
	}
	for _, tt := range tests {
		if got := history.SanitizeFTS(tt.in); got != tt.want {
			t.Errorf("sanitizeFTS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"abcdefgh", 6, "abc..."},
		{"abc", 3, "abc"},
		{"自动审批请求", 7, "自动..."},
	}
	for _, tt := range tests {
		if got := history.Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	got := history.Truncate(strings.Repeat("é", 300), 199)
	if !utf8.ValidString(got) {
		t.Fatalf("Truncate produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") || runewidth.StringWidth(got) > 199 {
		t.Errorf("Truncate(%d runes) = width %d, want <= 199 ending in ...", 300, runewidth.StringWidth(got))
	}
}

func TestSearch_NonASCIIConcept(t *testing.T) {
	s := newTestStore(t)
	concept := "Détecter les écarts de paie " + strings.Repeat("é", 200)
	save(t, s, concept, "hcm")

	recs, err := s.Search("Détecter", history.SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Concept != concept {
		t.Fatalf("Search(Détecter) = %+v", recs)
	}
	if short := history.Truncate(recs[0].Concept, 200); !utf8.ValidString(short) {
		t.Errorf("truncated concept is not valid UTF-8")
	}
}
