package history

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"gold-premium-bot/internal/logger"
	"gold-premium-bot/internal/types"
)

// keep bounds the rolling window: only the most recent entries survive a Save.
const keep = 100

// Store persists the premium history as an ordered JSON array, one entry per
// calendar day, oldest first.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

// Load reads the persisted history. A missing file is a fresh start and any
// unreadable or structurally invalid content is treated as an empty history,
// never as a fatal error.
func (s *Store) Load(ctx context.Context) []types.PremiumObservation {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn(ctx, "History file unreadable, starting empty", "path", s.path, "error", err)
		}
		return nil
	}

	var hist []types.PremiumObservation
	if err := json.Unmarshal(b, &hist); err != nil {
		logger.Warn(ctx, "History file corrupt, starting empty", "path", s.path, "error", err)
		return nil
	}
	return hist
}

// Save writes the history back, trimming to the most recent entries.
func (s *Store) Save(history []types.PremiumObservation) error {
	if len(history) > keep {
		history = history[len(history)-keep:]
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// UpsertToday merges today's observation into the history: when the last
// entry already carries the same date it is replaced in place, otherwise the
// observation is appended. Re-running on the same day therefore never grows
// the history, and the latest run's value wins.
func UpsertToday(history []types.PremiumObservation, obs types.PremiumObservation) []types.PremiumObservation {
	if n := len(history); n > 0 && history[n-1].Date == obs.Date {
		history[n-1] = obs
		return history
	}
	return append(history, obs)
}

// LastBefore returns the most recent observation whose date differs from
// today, for day-over-day comparison.
func LastBefore(history []types.PremiumObservation, today string) (types.PremiumObservation, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Date != today {
			return history[i], true
		}
	}
	return types.PremiumObservation{}, false
}

// LastN returns up to the n most recent observations, oldest first.
func LastN(history []types.PremiumObservation, n int) []types.PremiumObservation {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
