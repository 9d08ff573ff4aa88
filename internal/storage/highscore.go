package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// HighScoreFile stores the single best score as {"high_score": n}.
type HighScoreFile struct {
	path string
}

type highScoreDoc struct {
	HighScore int `json:"high_score"`
}

// NewHighScoreFile returns a file store at path. A leading ~ is expanded.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the expanded file path.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored score. A missing, unreadable or malformed file
// reads as 0.
func (f *HighScoreFile) Load() int {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	var doc highScoreDoc
	if err := json.Unmarshal(data, &doc); err != nil || doc.HighScore < 0 {
		return 0
	}
	return doc.HighScore
}

// Save writes score through a temporary file and a rename so readers never
// see a partial document.
func (f *HighScoreFile) Save(score int) error {
	data, err := json.Marshal(highScoreDoc{HighScore: score})
	if err != nil {
		return fmt.Errorf("storage: encode high score: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.json")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: replace %s: %w", f.path, err)
	}
	return nil
}

// HighScores combines the JSON best-score file with the optional SQLite
// history. Either part may be nil.
type HighScores struct {
	file  *HighScoreFile
	store *Store
}

// NewHighScores combines file and store.
func NewHighScores(file *HighScoreFile, store *Store) *HighScores {
	return &HighScores{file: file, store: store}
}

// Best returns the larger of the file score and the database maximum.
// Database errors are returned alongside the best value still known.
func (h *HighScores) Best(gameID string) (int, error) {
	best := 0
	if h.file != nil {
		best = h.file.Load()
	}
	if h.store == nil {
		return best, nil
	}
	dbBest, err := h.store.HighScore(gameID)
	if err != nil {
		return best, err
	}
	return max(best, dbBest), nil
}

// Record appends r to the history and rewrites the best-score file when r
// beats it. It reports whether r beat the best known before the call.
func (h *HighScores) Record(r Result) (improved bool, err error) {
	var errs []error
	prev, err := h.Best(r.GameID)
	if err != nil {
		errs = append(errs, err)
	}

	if h.store != nil {
		if _, err := h.store.SaveResult(r); err != nil {
			errs = append(errs, err)
		}
	}
	if h.file != nil && r.Score > h.file.Load() {
		if err := h.file.Save(r.Score); err != nil {
			errs = append(errs, err)
		}
	}
	return r.Score > prev, errors.Join(errs...)
}

// Store returns the SQLite history, or nil.
func (h *HighScores) Store() *Store {
	return h.store
}
