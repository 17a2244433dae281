package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mrhaji1999/vandapay-sub001/internal/model"
)

// The durable credentials record is a single JSON document
// holding {token, user}, replaced atomically on every write
// and removed entirely on logout. This Store is its only writer.

func loadSessionFile(path string) (*model.Session, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	state := new(model.Session)
	if err = json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	return state, nil
}

// persistLocked writes the current state ; s.mu MUST be held.
func (s *Store) persistLocked() {
	path := s.opts.File
	if path == "" {
		return // memory only
	}

	data, err := json.MarshalIndent(&s.state, "", "  ")
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o700)
	}
	if err == nil {
		// write aside + rename ; a crashed write never
		// leaves a half-replaced session behind
		temp := path + ".tmp"
		err = os.WriteFile(temp, data, 0o600)
		if err == nil {
			err = os.Rename(temp, path)
		}
	}
	if err != nil {
		s.opts.Logger.Warn("session: persist failed",
			slog.String("file", path),
			slog.Any("err", err),
		)
	}
}

// removeLocked deletes the durable record ; s.mu MUST be held.
func (s *Store) removeLocked() {
	path := s.opts.File
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.opts.Logger.Warn("session: remove failed",
			slog.String("file", path),
			slog.Any("err", err),
		)
	}
}
