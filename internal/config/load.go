package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	env "github.com/caarlos0/env/v11"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/qtschema/pkg/langs"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "QTSCHEMA_"

// DefaultFiles are searched, in order, when no project file is given.
var DefaultFiles = []string{"qtschema.yml", "qtschema.yaml", "qtschema.toml"}

// ErrNoProject is returned by Find when no project file exists in a directory.
var ErrNoProject = errors.New("no qtschema project file found")

// LoadEnv reads QTSCHEMA_* variables.
func LoadEnv() (*Env, error) {
	var cfg Env
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// Find returns the first of DefaultFiles present in dir.
func Find(dir string) (string, error) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNoProject
}

// Load reads a project file, choosing the decoder by extension, and resolves
// schema paths relative to the file's directory.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var p Project
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported project file extension %q", filepath.Ext(path))
	}

	dir := filepath.Dir(path)
	for i, s := range p.Schemas {
		if !filepath.IsAbs(s) {
			p.Schemas[i] = filepath.Join(dir, s)
		}
	}
	for i, t := range p.Targets {
		if t.Output != "" && !filepath.IsAbs(t.Output) {
			p.Targets[i].Output = filepath.Join(dir, t.Output)
		}
	}

	if err := p.Check(); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}
	return &p, nil
}

// Check verifies that every target names a supported language with valid
// options. base_name may be empty here; the CLI's --base-name can supply it.
func (p *Project) Check() error {
	for i, t := range p.Targets {
		if _, err := t.Selection(); err != nil {
			return fmt.Errorf("targets[%d]: %w", i, err)
		}
	}
	return nil
}

// Selection decodes the target's language and options.
func (t Target) Selection() (langs.Language, error) {
	return langs.Decode(t.Language, t.Options)
}

// ReadFragment loads a schema fragment file as JSON text. YAML fragments are
// converted to JSON.
func ReadFragment(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return "", fmt.Errorf("failed to parse schema %s: %w", path, err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to convert schema %s: %w", path, err)
		}
		return string(out), nil
	default:
		return string(data), nil
	}
}
