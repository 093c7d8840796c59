package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultBestScorePath is the plain-text best-score file, kept in the
// working directory next to the high-score database.
const DefaultBestScorePath = "serpent_best.txt"

// BestScoreStore reads and writes the single best-score integer.
type BestScoreStore struct {
	Path string
}

// NewBestScoreStore returns a store backed by path, or by
// DefaultBestScorePath when path is empty.
func NewBestScoreStore(path string) *BestScoreStore {
	if path == "" {
		path = DefaultBestScorePath
	}
	return &BestScoreStore{Path: path}
}

// Load returns the stored best score. A missing, unreadable or malformed
// file counts as zero; Load never fails.
func (s *BestScoreStore) Load() int {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Save overwrites the file with v in decimal text.
func (s *BestScoreStore) Save(v int) error {
	if v < 0 {
		return fmt.Errorf("best score must be non-negative, got %d", v)
	}
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(v)+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write best score file: %w", err)
	}
	return nil
}
