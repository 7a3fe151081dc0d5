package leaderboard

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/fingerdrill/internal/model"
	"github.com/verte-zerg/fingerdrill/internal/store"
)

func openBoard(t *testing.T) (*Board, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "fingerdrill.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return New(st, zaptest.NewLogger(t)), st
}

func writeRaw(t *testing.T, st *store.Store, raw string) {
	t.Helper()
	require.NoError(t, st.Update(context.Background(), Key, func(string, bool) (string, error) {
		return raw, nil
	}))
}

func wpms(scores []model.Score) []int {
	out := make([]int, len(scores))
	for i, s := range scores {
		out[i] = s.WPM
	}
	return out
}

func TestRecordKeepsTopFiveSorted(t *testing.T) {
	board, _ := openBoard(t)
	ctx := context.Background()

	for _, w := range []int{10, 50, 30, 90, 20, 40} {
		scores, err := board.Record(ctx, model.Score{WPM: w, Acc: "95%", Time: "10:00:00"})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(scores), Size)
	}

	assert.Equal(t, []int{90, 50, 40, 30, 20}, wpms(board.List(ctx)))
}

func TestPersistedFormat(t *testing.T) {
	board, st := openBoard(t)
	ctx := context.Background()

	_, err := board.Record(ctx, model.Score{WPM: 42, Acc: "97%", Time: "09:15:00"})
	require.NoError(t, err)

	raw, err := st.Get(ctx, Key)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"wpm":42,"acc":"97%","time":"09:15:00"}]`, raw)
}

func TestListMissingIsEmpty(t *testing.T) {
	board, _ := openBoard(t)
	scores := board.List(context.Background())
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestCorruptDataTreatedAsEmpty(t *testing.T) {
	board, st := openBoard(t)
	ctx := context.Background()
	writeRaw(t, st, "{not json")

	assert.Empty(t, board.List(ctx))

	scores, err := board.Record(ctx, model.Score{WPM: 12, Acc: "80%", Time: "t"})
	require.NoError(t, err)
	assert.Equal(t, []int{12}, wpms(scores))
}

func TestNullDataTreatedAsEmpty(t *testing.T) {
	board, st := openBoard(t)
	ctx := context.Background()
	writeRaw(t, st, "null")
	assert.Empty(t, board.List(ctx))
}

func TestFractionalWPMIsRounded(t *testing.T) {
	board, st := openBoard(t)
	ctx := context.Background()
	writeRaw(t, st, `[{"wpm":61.5,"acc":"90%","time":"08:00:00"},{"wpm":40.4,"acc":"88%","time":"08:05:00"}]`)

	scores := board.List(ctx)
	assert.Equal(t, []int{62, 40}, wpms(scores))
	assert.Equal(t, "90%", scores[0].Acc)
	assert.Equal(t, "08:05:00", scores[1].Time)
}

func TestCorruptEntrySkipped(t *testing.T) {
	board, st := openBoard(t)
	ctx := context.Background()
	writeRaw(t, st, `[{"wpm":70,"acc":"99%","time":"a"},{"wpm":"fast"},42,{"wpm":30,"acc":"80%","time":"b"}]`)

	assert.Equal(t, []int{70, 30}, wpms(board.List(ctx)))

	scores, err := board.Record(ctx, model.Score{WPM: 50, Acc: "90%", Time: "c"})
	require.NoError(t, err)
	assert.Equal(t, []int{70, 50, 30}, wpms(scores))
}

func TestClear(t *testing.T) {
	board, _ := openBoard(t)
	ctx := context.Background()
	_, err := board.Record(ctx, model.Score{WPM: 70})
	require.NoError(t, err)

	require.NoError(t, board.Clear(ctx))
	assert.Empty(t, board.List(ctx))
}

func TestInsertStableOnTies(t *testing.T) {
	scores := []model.Score{{WPM: 50, Time: "first"}}
	out := Insert(scores, model.Score{WPM: 50, Time: "second"})
	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Time)
	assert.Equal(t, "second", out[1].Time)
	assert.Len(t, scores, 1)
}

func TestInsertEvictsSlowest(t *testing.T) {
	var scores []model.Score
	for _, w := range []int{1, 2, 3, 4, 5} {
		scores = Insert(scores, model.Score{WPM: w})
	}
	scores = Insert(scores, model.Score{WPM: 0})
	assert.Equal(t, []int{5, 4, 3, 2, 1}, wpms(scores))
}
