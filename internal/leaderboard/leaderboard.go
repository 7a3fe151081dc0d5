// Package leaderboard keeps the persisted top runs, ordered by speed.
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/verte-zerg/fingerdrill/internal/model"
	"github.com/verte-zerg/fingerdrill/internal/store"
)

const (
	// Key is the store entry holding the JSON-encoded score list.
	Key = "scores"
	// Size is the number of scores kept.
	Size = 5
)

// KV is the subset of the store the leaderboard needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Update(ctx context.Context, key string, fn func(value string, found bool) (string, error)) error
	Delete(ctx context.Context, key string) error
}

// Board reads and updates the persisted leaderboard.
type Board struct {
	kv     KV
	logger *zap.Logger
}

// New returns a board backed by kv. A nil logger discards output.
func New(kv KV, logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{kv: kv, logger: logger.Named("leaderboard")}
}

// List returns the stored scores. Missing or corrupt data yields an empty list.
func (b *Board) List(ctx context.Context) []model.Score {
	raw, err := b.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			b.logger.Warn("failed to read leaderboard", zap.Error(err))
		}
		return []model.Score{}
	}
	return b.decode(raw)
}

// Record inserts score, keeps the best Size entries and returns the new list.
func (b *Board) Record(ctx context.Context, score model.Score) ([]model.Score, error) {
	var updated []model.Score
	err := b.kv.Update(ctx, Key, func(raw string, found bool) (string, error) {
		scores := []model.Score{}
		if found {
			scores = b.decode(raw)
		}
		updated = Insert(scores, score)
		data, err := json.Marshal(updated)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
	if err != nil {
		return nil, err
	}
	b.logger.Debug("score recorded", zap.Int("wpm", score.WPM), zap.String("acc", score.Acc))
	return updated, nil
}

// Clear removes every stored score.
func (b *Board) Clear(ctx context.Context) error {
	return b.kv.Delete(ctx, Key)
}

// storedScore accepts any JSON number for wpm.
type storedScore struct {
	WPM  float64 `json:"wpm"`
	Acc  string  `json:"acc"`
	Time string  `json:"time"`
}

// decode reads the stored list. Entries that do not parse are skipped; a
// list that does not parse at all reads as empty. Fractional wpm values are
// rounded half up.
func (b *Board) decode(raw string) []model.Score {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		b.logger.Warn("discarding corrupt leaderboard", zap.Error(err))
		return []model.Score{}
	}
	scores := make([]model.Score, 0, len(entries))
	for i, entry := range entries {
		var s storedScore
		if err := json.Unmarshal(entry, &s); err != nil {
			b.logger.Warn("skipping corrupt leaderboard entry", zap.Int("index", i), zap.Error(err))
			continue
		}
		scores = append(scores, model.Score{
			WPM:  int(math.Floor(s.WPM + 0.5)),
			Acc:  s.Acc,
			Time: s.Time,
		})
	}
	return scores
}

// Insert appends score to scores, sorts descending by WPM and truncates to Size.
// Ties keep insertion order. The input slice is not modified.
func Insert(scores []model.Score, score model.Score) []model.Score {
	out := make([]model.Score, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, score)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WPM > out[j].WPM
	})
	if len(out) > Size {
		out = out[:Size]
	}
	return out
}
