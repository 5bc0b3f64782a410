// Package store provides the durable local mirror of session state.
//
// The store is a passive key-value layer: services own the in-memory state
// and write through after every mutation. Loads never fail the caller - a
// missing or corrupt value degrades to the empty default so the session can
// always start, whatever happened to the data on disk.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("session database opened", "path", path)
	}

	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing session database")
	}
	return s.db.Close()
}

// Load reads the value for key into dest and reports whether a usable value
// was found. A missing key leaves dest untouched and returns false. A value
// that fails to decode is treated the same as a missing one: the corrupt
// entry is dropped, a warning is logged, and the caller proceeds with its
// empty default. Load never returns an error.
func (s *Store) Load(key string, dest any) bool {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false
	}
	if err != nil {
		s.warn("failed to read stored value", key, err)
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.warn("stored value is corrupt, resetting to empty", key, err)
		s.Delete(key)
		return false
	}
	return true
}

// LoadRaw reads the raw bytes for key. Same degrade-to-absent contract as Load.
func (s *Store) LoadRaw(key string) ([]byte, bool) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		s.warn("failed to read stored value", key, err)
		return nil, false
	}
	return raw, true
}

// Save writes the JSON encoding of value under key. Persistence is
// best-effort: failures are logged and swallowed, never surfaced, so a
// broken disk degrades the mirror rather than the session.
func (s *Store) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.warn("failed to marshal value for storage", key, err)
		return
	}
	s.SaveRaw(key, data)
}

// SaveRaw writes raw bytes under key, best-effort.
func (s *Store) SaveRaw(key string, data []byte) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		s.warn("failed to persist value", key, err)
	}
}

// Delete removes a key, best-effort. Idempotent if the key is absent.
func (s *Store) Delete(key string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		s.warn("failed to delete stored value", key, err)
	}
}

func (s *Store) warn(msg, key string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "key", key, "error", err)
	}
}
