package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lox/knockouts/internal/fileutil"
)

// Report is the JSON document written for a completed session.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Hero        string       `json:"hero"`
	MinBigBlind int          `json:"min_big_blind"`
	Files       []FileResult `json:"files"`
	Total       int          `json:"total_knockouts"`
}

// WriteReport writes the session result to path as indented JSON. The
// write is atomic so a watching consumer never reads a partial report.
func WriteReport(path string, result *Result, config *Config) error {
	report := Report{
		GeneratedAt: time.Now().UTC(),
		Hero:        config.Hero,
		MinBigBlind: config.MinBigBlind,
		Files:       result.Files,
		Total:       result.Total,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
