// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists fetched word info in a SQLite database so
// repeated lookups skip the network.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tkoval/anki-vocab/pkg/types"
)

const dbFile = "words.db"

// defaultTTLDays is how long an entry stays fresh when config does not
// say otherwise.
const defaultTTLDays = 30

// Store is a word-info cache backed by SQLite, with an in-process map
// in front of it for repeated hits within one run.
type Store struct {
	db  *sql.DB
	ttl time.Duration

	mu  sync.RWMutex
	hot map[string]*types.WordInfo
}

// NewStore opens or creates the cache database under cfg.Dir.
func NewStore(cfg types.CacheConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	ttlDays := cfg.TTLDays
	if ttlDays <= 0 {
		ttlDays = defaultTTLDays
	}

	s := &Store{
		db:  db,
		ttl: time.Duration(ttlDays) * 24 * time.Hour,
		hot: make(map[string]*types.WordInfo),
	}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS word_cache (
		word TEXT PRIMARY KEY,
		info TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	)`)
	return err
}

// Get returns the cached info for word, or nil when absent or expired.
// Expired rows are deleted on read.
func (s *Store) Get(word string) (*types.WordInfo, error) {
	s.mu.RLock()
	if info, ok := s.hot[word]; ok {
		s.mu.RUnlock()
		return info, nil
	}
	s.mu.RUnlock()

	var payload, fetchedAt string
	err := s.db.QueryRow(
		`SELECT info, fetched_at FROM word_cache WHERE word = ?`, word,
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache for %q: %w", word, err)
	}

	ts, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil || time.Since(ts) > s.ttl {
		s.Delete(word)
		return nil, nil
	}

	var info types.WordInfo
	if err := json.Unmarshal([]byte(payload), &info); err != nil {
		// A corrupt row is as good as a miss.
		s.Delete(word)
		return nil, nil
	}

	s.mu.Lock()
	s.hot[word] = &info
	s.mu.Unlock()
	return &info, nil
}

// Put stores info for word, replacing any previous row.
func (s *Store) Put(word string, info *types.WordInfo) error {
	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding cache entry for %q: %w", word, err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO word_cache (word, info, fetched_at) VALUES (?, ?, ?)`,
		word, string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry for %q: %w", word, err)
	}

	s.mu.Lock()
	s.hot[word] = info
	s.mu.Unlock()
	return nil
}

// Delete removes one word from the cache.
func (s *Store) Delete(word string) error {
	s.mu.Lock()
	delete(s.hot, word)
	s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM word_cache WHERE word = ?`, word); err != nil {
		return fmt.Errorf("deleting cache entry for %q: %w", word, err)
	}
	return nil
}

// Clear empties the cache.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.hot = make(map[string]*types.WordInfo)
	s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM word_cache`); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

// Stats summarizes cache state.
type Stats struct {
	Words  int       `json:"words"`
	Oldest time.Time `json:"oldest,omitempty"`
	Newest time.Time `json:"newest,omitempty"`
}

// Stats counts cached words and reports the fetch-time range.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var oldest, newest sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(fetched_at), MAX(fetched_at) FROM word_cache`,
	).Scan(&st.Words, &oldest, &newest)
	if err != nil {
		return st, fmt.Errorf("reading cache stats: %w", err)
	}
	if oldest.Valid {
		st.Oldest, _ = time.Parse(time.RFC3339, oldest.String)
	}
	if newest.Valid {
		st.Newest, _ = time.Parse(time.RFC3339, newest.String)
	}
	return st, nil
}
