// Package config loads the driver's pipeline configuration from YAML,
// grounded on internal/eval_harness's LoadSpec pattern. The core compiler
// (spec.md §6) takes no config of its own; this is ambient driver-level
// configuration for cmd/schemec (output paths, builtin-table overrides for
// experimentation, env-table ordering hints).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schemec/schemec/internal/builtin"
	"github.com/schemec/schemec/internal/ir"
)

// BuiltinOverride lets an experiment rename or re-arity a surface builtin
// without touching internal/builtin's fixed table in source.
type BuiltinOverride struct {
	Canonical string `yaml:"canonical"`
	Arity     int    `yaml:"arity"`
}

// Config is the driver's top-level pipeline configuration.
type Config struct {
	// OutputPath is where the emitted C translation unit is written; "-"
	// (the default) means stdout.
	OutputPath string `yaml:"output"`

	// EmitEnvTable controls whether the environment descriptor table
	// (spec.md §4.8 item 2) is included in the output; defaults to true.
	EmitEnvTable *bool `yaml:"emit_env_table"`

	// BuiltinOverrides replaces or extends internal/builtin.Table entries
	// by surface name, for experimentation only.
	BuiltinOverrides map[string]BuiltinOverride `yaml:"builtin_overrides"`

	// BuiltinEnvIDs marks which lifted lambda ids are considered part of
	// the builtin environment set for the env table's builtin-envs-first
	// ordering (spec.md §4.8 item 2); empty means none are.
	BuiltinEnvIDs []uint64 `yaml:"builtin_env_ids"`
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = "-"
	}

	return cfg, nil
}

// Default returns the driver's configuration when no file is supplied.
func Default() *Config {
	emitEnvTable := true
	return &Config{
		OutputPath:   "-",
		EmitEnvTable: &emitEnvTable,
	}
}

// ShouldEmitEnvTable reports whether the environment descriptor table
// should be included in output, defaulting to true when unset.
func (c *Config) ShouldEmitEnvTable() bool {
	return c.EmitEnvTable == nil || *c.EmitEnvTable
}

// ResolvedBuiltinTable merges BuiltinOverrides onto base, returning a new
// map so internal/builtin.Table itself is never mutated. Call with
// builtin.Table as base; an empty BuiltinOverrides returns base unchanged.
func (c *Config) ResolvedBuiltinTable(base map[string]builtin.Entry) map[string]builtin.Entry {
	if len(c.BuiltinOverrides) == 0 {
		return base
	}
	table := make(map[string]builtin.Entry, len(base)+len(c.BuiltinOverrides))
	for name, entry := range base {
		table[name] = entry
	}
	for name, override := range c.BuiltinOverrides {
		table[name] = builtin.Entry{Canonical: override.Canonical, Arity: ir.Arity(override.Arity)}
	}
	return table
}
