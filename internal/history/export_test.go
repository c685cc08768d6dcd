package history

import (
	"database/sql"
	"time"
)

// DB exposes the internal *sql.DB for tests in history_test.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SetClock replaces the store clock so CreatedAt is predictable.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// SanitizeFTS exposes sanitizeFTS to history_test.
var SanitizeFTS = sanitizeFTS
