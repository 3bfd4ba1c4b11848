package score

import (
	"encoding/json"
	"fmt"
	"io"
)

// onDiskFormat mirrors the scoring table file from spec.md §6: a
// single top-level key, `ninemer_scores`, holding the
// triplet -> ninemer -> score map.
type onDiskFormat struct {
	NinemerScores map[string]map[string]int `json:"ninemer_scores"`
}

// Load reads the scoring table JSON file from r and builds an Oracle.
// Called once at worker startup, per spec.md §6.
func Load(r io.Reader) (*Oracle, error) {
	var raw onDiskFormat
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("score: decoding scoring table: %w", err)
	}
	return Build(raw.NinemerScores), nil
}
