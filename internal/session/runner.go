package session

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/knockouts/internal/fileutil"
	"github.com/lox/knockouts/internal/hands"
	"github.com/lox/knockouts/internal/knockout"
)

// HandCredit ties a credited knockout to the hand it happened in.
type HandCredit struct {
	HandIndex int             `json:"hand_index"` // chronological, zero-based
	Credit    knockout.Credit `json:"credit"`
}

// FileResult is the outcome of processing one hand history file.
type FileResult struct {
	Path      string       `json:"path"`
	Hands     int          `json:"hands"`
	Knockouts int          `json:"knockouts"`
	Credits   []HandCredit `json:"credits,omitempty"`
}

// Result aggregates a whole session.
type Result struct {
	Files []FileResult `json:"files"`
	Total int          `json:"total"`
}

// Runner applies the knockout pipeline to every input file.
type Runner struct {
	config *Config
	logger *log.Logger
}

// NewRunner creates a session runner.
func NewRunner(config *Config, logger *log.Logger) *Runner {
	return &Runner{config: config, logger: logger}
}

// Run processes every hand history file reachable from paths. Files
// are independent, so they are processed in parallel up to the
// configured worker count; each worker writes only its own result
// slot. Finding no input at all is the one terminal error: it means
// the paths are wrong, not that a hand was malformed.
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	files, err := fileutil.FindLogs(paths, r.config.Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no hand history files found under %s", strings.Join(paths, ", "))
	}

	results := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.ProcessFile(path)
			if err != nil {
				// A single unreadable file degrades the count, it
				// does not abort the session.
				r.logger.Error("failed to process file", "path", path, "error", err)
				results[i] = FileResult{Path: path}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Files: results}
	for _, fr := range results {
		result.Total += fr.Knockouts
	}
	return result, nil
}

// ProcessFile reads one file wholesale and replays its hands in
// chronological order, crediting the hero's knockouts.
func (r *Runner) ProcessFile(path string) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}

	parsed := ParseFile(string(data), r.config.MinBigBlind, r.logger)
	attributor := &knockout.Attributor{
		Hero:        r.config.Hero,
		MinBigBlind: r.config.MinBigBlind,
		Diagnostics: r.config.Diagnostics,
		Logger:      r.logger.With("path", path),
	}

	result := FileResult{Path: path, Hands: len(parsed)}
	for i, hand := range parsed {
		var next *hands.Hand
		if i+1 < len(parsed) {
			next = parsed[i+1]
		}
		eliminated := knockout.Eliminated(hand, next)
		for _, credit := range attributor.Attribute(hand, eliminated) {
			result.Credits = append(result.Credits, HandCredit{HandIndex: i, Credit: credit})
			result.Knockouts++
		}
	}
	return result, nil
}

// ParseFile splits raw file text into hands, reverses the stored
// newest-first order so elimination detection sees chronological
// pairs, and settles every hand's pots.
func ParseFile(data string, defaultBB int, logger *log.Logger) []*hands.Hand {
	lines := strings.Split(data, "\n")
	ranges := hands.Split(lines)
	parser := &hands.Parser{DefaultBB: defaultBB, Logger: logger}

	parsed := make([]*hands.Hand, 0, len(ranges))
	for _, rng := range ranges {
		hand, _ := parser.ParseHand(lines[rng.Start:rng.End], 0)
		parsed = append(parsed, hand)
	}

	// Logs are written newest hand first.
	for i, j := 0, len(parsed)-1; i < j; i, j = i+1, j-1 {
		parsed[i], parsed[j] = parsed[j], parsed[i]
	}

	for _, hand := range parsed {
		hands.BuildPots(hand)
		hands.AssignWinners(hand)
	}
	return parsed
}
