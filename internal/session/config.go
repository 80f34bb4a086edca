// Package session runs the knockout pipeline across a set of hand
// history files and aggregates the results.
package session

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config controls a counting session.
type Config struct {
	Hero        string `hcl:"hero,optional"`
	MinBigBlind int    `hcl:"min_big_blind,optional"`
	Workers     int    `hcl:"workers,optional"`
	Extension   string `hcl:"extension,optional"`
	Diagnostics bool   `hcl:"diagnostics,optional"`
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() *Config {
	return &Config{
		Hero:        "Hero",
		MinBigBlind: 100,
		Workers:     runtime.NumCPU(),
		Extension:   ".txt",
	}
}

// LoadConfig loads session configuration from an HCL file, falling
// back to defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Hero == "" {
		config.Hero = "Hero"
	}
	if config.MinBigBlind == 0 {
		config.MinBigBlind = 100
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Extension == "" {
		config.Extension = ".txt"
	}
	return &config, nil
}
