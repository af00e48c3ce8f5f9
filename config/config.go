// Package config loads named movement policies and search limits from YAML.
//
// Example file:
//
//	policies:
//	  - name: standard
//	    min_run: 1
//	    max_run: 3
//	  - name: ultra
//	    min_run: 4
//	    max_run: 10
//	search:
//	  max_expansions: 0
//	  timeout: 30s
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/movement"
)

// ErrInvalidConfig wraps every validation failure of a loaded configuration.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PolicyConfig is the YAML form of a movement.Policy.
type PolicyConfig struct {
	Name   string `yaml:"name"`
	MinRun int    `yaml:"min_run"`
	MaxRun int    `yaml:"max_run"`
}

// SearchConfig holds limits applied to every search.
type SearchConfig struct {
	// MaxExpansions caps finalized states per search; 0 means no cap.
	MaxExpansions int `yaml:"max_expansions"`
	// Timeout bounds a whole solve invocation; 0 means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// Config is the root of the YAML document.
type Config struct {
	Policies []PolicyConfig `yaml:"policies"`
	Search   SearchConfig   `yaml:"search"`
}

// Default returns the two classic policies and no search limits.
func Default() Config {
	return Config{
		Policies: []PolicyConfig{
			fromPolicy(movement.Standard),
			fromPolicy(movement.Ultra),
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
// An empty document yields Default().
func Parse(data []byte) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Default(), nil
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil // comments only
		}
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len(cfg.Policies) == 0 {
		cfg.Policies = Default().Policies
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every policy and limit.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Policies))
	for i, pc := range c.Policies {
		name := strings.TrimSpace(pc.Name)
		if name == "" {
			return fmt.Errorf("%w: policy #%d has no name", ErrInvalidConfig, i)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate policy %q", ErrInvalidConfig, name)
		}
		seen[key] = struct{}{}
		if _, err := movement.NewPolicy(pc.MinRun, pc.MaxRun); err != nil {
			return fmt.Errorf("%w: policy %q: %w", ErrInvalidConfig, name, err)
		}
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d is negative", ErrInvalidConfig, c.Search.MaxExpansions)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s is negative", ErrInvalidConfig, c.Search.Timeout)
	}

	return nil
}

// MovementPolicies returns every configured policy in file order.
func (c Config) MovementPolicies() []movement.Policy {
	out := make([]movement.Policy, 0, len(c.Policies))
	for _, pc := range c.Policies {
		out = append(out, pc.policy())
	}

	return out
}

// Policy returns the configured policy called name (case-insensitive).
// Other names resolve through movement.Lookup, so "a" and "b" pick up a
// file entry named "standard" or "ultra" before the built-in one.
func (c Config) Policy(name string) (movement.Policy, error) {
	if p, ok := c.find(name); ok {
		return p, nil
	}
	builtin, err := movement.Lookup(name)
	if err != nil {
		return movement.Policy{}, err
	}
	if p, ok := c.find(builtin.Name); ok {
		return p, nil
	}

	return builtin, nil
}

func (c Config) find(name string) (movement.Policy, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, pc := range c.Policies {
		if strings.ToLower(strings.TrimSpace(pc.Name)) == key {
			return pc.policy(), true
		}
	}

	return movement.Policy{}, false
}

func (pc PolicyConfig) policy() movement.Policy {
	return movement.Policy{Name: strings.TrimSpace(pc.Name), MinRun: pc.MinRun, MaxRun: pc.MaxRun}
}

func fromPolicy(p movement.Policy) PolicyConfig {
	return PolicyConfig{Name: p.Name, MinRun: p.MinRun, MaxRun: p.MaxRun}
}
