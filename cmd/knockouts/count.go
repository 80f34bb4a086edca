package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/knockouts/internal/session"
)

// CountCmd runs the full pipeline over every input file and prints
// per-file and total knockout counts.
type CountCmd struct {
	Paths       []string `arg:"" name:"path" help:"Hand history files or directories" type:"path"`
	Config      string   `help:"Path to HCL config file" default:"knockouts.hcl"`
	Hero        string   `help:"Name of the tracked player (overrides config)"`
	MinBB       int      `name:"min-bb" help:"Minimum big blind for counted knockouts (overrides config)"`
	Workers     int      `help:"Parallel file workers (overrides config)"`
	JSON        string   `name:"json" help:"Write a JSON report to this path"`
	Diagnostics bool     `help:"Log each credited knockout"`
	Debug       bool     `help:"Enable debug logging"`
}

func (cmd *CountCmd) Run() error {
	config, err := session.LoadConfig(cmd.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Hero != "" {
		config.Hero = cmd.Hero
	}
	if cmd.MinBB > 0 {
		config.MinBigBlind = cmd.MinBB
	}
	if cmd.Workers > 0 {
		config.Workers = cmd.Workers
	}
	if cmd.Diagnostics {
		config.Diagnostics = true
	}

	logger := setupLogger(cmd.Debug)
	runner := session.NewRunner(config, logger)
	result, err := runner.Run(context.Background(), cmd.Paths)
	if err != nil {
		return err
	}

	renderSummary(result, config)

	if cmd.JSON != "" {
		if err := session.WriteReport(cmd.JSON, result, config); err != nil {
			return err
		}
		logger.Info("wrote report", "path", cmd.JSON)
	}
	return nil
}

func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})
}

func renderSummary(result *session.Result, config *session.Config) {
	fmt.Println(titleStyle.Render(fmt.Sprintf(" Knockouts for %s ", config.Hero)))
	fmt.Println()
	for _, fr := range result.Files {
		line := fmt.Sprintf("%-50s %3d hands  %2d knockouts", fr.Path, fr.Hands, fr.Knockouts)
		if fr.Knockouts > 0 {
			fmt.Println(headerStyle.Render(line))
		} else {
			fmt.Println(dimStyle.Render(line))
		}
	}
	fmt.Println()
	fmt.Println(totalStyle.Render(fmt.Sprintf("Total: %d knockouts", result.Total)))
}
