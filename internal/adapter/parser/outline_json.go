package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"doccov/internal/domain"
)

// OutlineFile is an externally produced outline, typically emitted by a
// parser for a language this tool does not parse itself.
type OutlineFile struct {
	Path  string        `json:"path"`
	Units []domain.Unit `json:"units"`
}

// LoadOutline reads an outline file from disk. The unit sequence is
// passed through as-is; the analyzer validates it.
func LoadOutline(path string) (OutlineFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OutlineFile{}, fmt.Errorf("failed to read outline file: %w", err)
	}

	var outline OutlineFile
	if err := json.Unmarshal(data, &outline); err != nil {
		return OutlineFile{}, fmt.Errorf("failed to parse outline file: %w", err)
	}
	if outline.Path == "" {
		outline.Path = path
	}

	return outline, nil
}
