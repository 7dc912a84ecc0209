package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds configuration for running self-play simulations
type Config struct {
	Seats       []string `hcl:"seats,optional"`
	Games       int      `hcl:"games,optional"`
	Seed        int64    `hcl:"seed,optional"`
	Concurrency int      `hcl:"concurrency,optional"`
}

// DefaultConfig returns the default simulation configuration
func DefaultConfig() Config {
	return Config{
		Seats:       []string{"Alice", "Bob", "Carol", "Dave"},
		Games:       1000,
		Seed:        1,
		Concurrency: 1,
	}
}

// LoadConfig loads simulation configuration from an HCL file. A missing
// file yields the defaults; fields absent from the file keep theirs.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return config, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return config, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var loaded Config
	diags = gohcl.DecodeBody(file.Body, nil, &loaded)
	if diags.HasErrors() {
		return config, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(loaded.Seats) > 0 {
		config.Seats = loaded.Seats
	}
	if loaded.Games > 0 {
		config.Games = loaded.Games
	}
	if loaded.Seed != 0 {
		config.Seed = loaded.Seed
	}
	if loaded.Concurrency > 0 {
		config.Concurrency = loaded.Concurrency
	}
	return config, nil
}

// Validate checks the configuration is runnable
func (c Config) Validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("need at least 2 seats, got %d", len(c.Seats))
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	return nil
}
