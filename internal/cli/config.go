// Package cli hosts the shared plumbing for the graft command line tool:
// project configuration, loader and composer factories, and watch mode.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/aretw0/graft/pkg/policy"
)

// ConfigFile is the project configuration file looked up in the project dir.
const ConfigFile = "graft.toml"

// Config carries project-level defaults for the CLI.
// Precedence: built-in defaults, then graft.toml, then GRAFT_* environment
// variables. Plans that set their own policy or strict flag always win over
// the config.
type Config struct {
	// Policy is the default conflict policy for plans that leave it blank.
	Policy string `toml:"policy" env:"GRAFT_POLICY"`

	// Strict makes plans without an explicit strict flag fail on duplicates.
	Strict bool `toml:"strict" env:"GRAFT_STRICT"`

	// Debug enables verbose logging to stderr.
	Debug bool `toml:"debug" env:"GRAFT_DEBUG"`

	// Plans is the directory holding plan documents, relative to the
	// project dir unless absolute.
	Plans string `toml:"plans" env:"GRAFT_PLANS"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Policy: "",
		Strict: false,
		Debug:  false,
		Plans:  ".",
	}
}

// LoadConfig resolves the effective configuration for a project directory.
// A missing graft.toml is not an error; a malformed one is.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		var raw Config
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load %s: %w", ConfigFile, err)
		}
		if meta.IsDefined("policy") {
			cfg.Policy = strings.TrimSpace(raw.Policy)
		}
		if meta.IsDefined("strict") {
			cfg.Strict = raw.Strict
		}
		if meta.IsDefined("debug") {
			cfg.Debug = raw.Debug
		}
		if meta.IsDefined("plans") {
			cfg.Plans = strings.TrimSpace(raw.Plans)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	// Fail fast on typos before any plan work starts.
	if _, err := policy.Parse(cfg.Policy); err != nil {
		return Config{}, fmt.Errorf("config policy: %w", err)
	}

	return cfg, nil
}

// PlansDir returns the absolute-ish plans directory for a project dir.
func (c Config) PlansDir(dir string) string {
	if c.Plans == "" || c.Plans == "." {
		return dir
	}
	if filepath.IsAbs(c.Plans) {
		return c.Plans
	}
	return filepath.Join(dir, c.Plans)
}
