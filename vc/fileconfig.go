package vc

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/yogotie/vunit/logging"
)

// FileConfig is the TOML testbench configuration. It captures the settings
// that are decided once per run: how the default logger is built, the
// default unexpected-message policy, and protocol level tuning such as
// ready-stall behavior. Agent packages interpret the sections they care
// about.
type FileConfig struct {
	Logging LoggingSection `toml:"logging"`
	Policy  PolicySection  `toml:"policy"`
	Stall   StallSection   `toml:"stall"`
}

// LoggingSection configures the default logger.
type LoggingSection struct {
	Level     string `toml:"level"`
	Format    string `toml:"format"`
	AddSource bool   `toml:"add_source"`
}

// PolicySection configures the default unexpected-message policy.
type PolicySection struct {
	// Unexpected is "fail" or "ignore".
	Unexpected string `toml:"unexpected"`
}

// StallSection tunes randomized handshake stalling for agents that support
// it.
type StallSection struct {
	Probability float64 `toml:"probability"`
	MinCycles   int     `toml:"min_cycles"`
	MaxCycles   int     `toml:"max_cycles"`
	Seed        int64   `toml:"seed"`
}

// DefaultPolicy returns the policy named by the file, defaulting to
// FailUnexpected.
func (f FileConfig) DefaultPolicy() Policy {
	if f.Policy.Unexpected == "ignore" {
		return IgnoreUnexpected
	}
	return FailUnexpected
}

// LoadFileConfig parses a TOML testbench configuration file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, errors.Wrapf(err, "vc: loading testbench config %s", path)
	}
	return fc, nil
}

// LoadDefaults parses a TOML testbench configuration file and builds the
// process Defaults registry from its logging section. Call it once at
// process start.
func LoadDefaults(path string) (*Defaults, FileConfig, error) {
	fc, err := LoadFileConfig(path)
	if err != nil {
		return nil, FileConfig{}, err
	}
	cfg := logging.DefaultLoggerConfig()
	cfg.Level = logging.ParseLevel(fc.Logging.Level)
	if fc.Logging.Format != "" {
		cfg.Format = fc.Logging.Format
	}
	cfg.AddSource = fc.Logging.AddSource
	return NewDefaults(logging.NewLogger(cfg)), fc, nil
}
