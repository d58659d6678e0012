package snapshot

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/fiscolab/fisco/internal/dataset"
)

// Session memoizes a snapshot load for its lifetime.
//
// The first Tables() call reads and validates the sources; every later
// call returns the identical result (the same *dataset.Tables pointer or
// the same error) without touching the filesystem again. The data never
// changes after a successful load, so all reads are safe concurrently.
//
// Each session carries a unique token used to correlate log lines.
type Session struct {
	token string
	fsys  fs.FS
	dir   string
	log   *slog.Logger

	once   sync.Once
	tables *dataset.Tables
	err    error
}

// NewSession creates a session over the given source filesystem.
// A nil logger falls back to slog.Default().
func NewSession(fsys fs.FS, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	token := uuid.NewString()
	return &Session{
		token: token,
		fsys:  fsys,
		log:   logger.With("session", token),
	}
}

// NewSessionDir creates a session over a snapshot directory, or over the
// embedded defaults when dir is empty.
func NewSessionDir(dir string, logger *slog.Logger) *Session {
	s := NewSession(nil, logger)
	s.dir = dir
	return s
}

// Token returns the session's correlation token.
func (s *Session) Token() string {
	return s.token
}

// Tables returns the loaded snapshot tables, loading them on first call.
func (s *Session) Tables() (*dataset.Tables, error) {
	s.once.Do(func() {
		s.log.Debug("loading snapshot sources")
		if s.fsys != nil {
			s.tables, s.err = Load(s.fsys)
		} else {
			s.tables, s.err = LoadDir(s.dir)
		}
		if s.err != nil {
			s.log.Error("snapshot load failed", "error", s.err)
			return
		}
		s.log.Debug("snapshot loaded",
			"evolution_rows", len(s.tables.Evolution()),
			"holder_rows", len(s.tables.Holders()),
			"spending_rows", len(s.tables.Spending()),
		)
	})
	return s.tables, s.err
}
