package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFile(t *testing.T) *HighScoreFile {
	t.Helper()
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "highscore.json"))
	require.NoError(t, err)
	return f
}

func TestHighScoreFileMissingReadsZero(t *testing.T) {
	assert.Equal(t, 0, newTestFile(t).Load())
}

func TestHighScoreFileSaveLoad(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Save(1234))
	assert.Equal(t, 1234, f.Load())

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"high_score": 1234}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(f.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestHighScoreFileCorruptReadsZero(t *testing.T) {
	tests := map[string]string{
		"garbage":  "not json",
		"negative": `{"high_score": -5}`,
		"wrong":    `{"high_score": "lots"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			f := newTestFile(t)
			require.NoError(t, os.WriteFile(f.Path(), []byte(body), 0o644))
			assert.Equal(t, 0, f.Load())
		})
	}
}

func TestNewHighScoreFileExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := NewHighScoreFile("~/.arcade/highscore.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".arcade", "highscore.json"), f.Path())

	require.NoError(t, f.Save(10), "parent directory is created on save")
}

func TestHighScoresBestCombinesSources(t *testing.T) {
	f := newTestFile(t)
	store := openTestStore(t)
	h := NewHighScores(f, store)

	best, err := h.Best("tetris")
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	require.NoError(t, f.Save(150))
	_, err = store.SaveScore("tetris", 400)
	require.NoError(t, err)

	best, err = h.Best("tetris")
	require.NoError(t, err)
	assert.Equal(t, 400, best)
}

func TestHighScoresRecord(t *testing.T) {
	f := newTestFile(t)
	store := openTestStore(t)
	h := NewHighScores(f, store)

	improved, err := h.Record(Result{GameID: "tetris", Score: 300, Level: 2, Lines: 11})
	require.NoError(t, err)
	assert.True(t, improved)
	assert.Equal(t, 300, f.Load())

	improved, err = h.Record(Result{GameID: "tetris", Score: 120, Level: 1, Lines: 1})
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Equal(t, 300, f.Load(), "lower score must not overwrite the file")

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2, "every game is kept in the history")
}

func TestHighScoresWithoutStore(t *testing.T) {
	h := NewHighScores(newTestFile(t), nil)

	improved, err := h.Record(Result{GameID: "tetris", Score: 50})
	require.NoError(t, err)
	assert.True(t, improved)

	best, err := h.Best("tetris")
	require.NoError(t, err)
	assert.Equal(t, 50, best)
}

func TestHighScoresWithoutFile(t *testing.T) {
	store := openTestStore(t)
	h := NewHighScores(nil, store)

	improved, err := h.Record(Result{GameID: "tetris", Score: 80, Level: 1})
	require.NoError(t, err)
	assert.True(t, improved, "database-only history still detects a new best")

	improved, err = h.Record(Result{GameID: "tetris", Score: 80, Level: 1})
	require.NoError(t, err)
	assert.False(t, improved, "a tie is not a new best")
}
