package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "TODO_"
	appDirName     = "todo-cli"
	baseConfigName = "config.yaml"
)

// envAliases are short environment names for frequently set keys.
var envAliases = map[string]string{
	"token": "client.token",
}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding config.yaml and profile files.
// Defaults to $XDG_CONFIG_HOME/todo-cli (os.UserConfigDir).
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, appDirName), nil
}

// Load reads configuration using a 4-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Base config ({configDir}/config.yaml), if present
//  3. Profile config ({configDir}/{profile}.yaml), if profile is set and the file exists
//  4. Environment variables (TODO_ prefix)
//
// Environment variable mapping uses key matching against known config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	TODO_LOG_LEVEL                  -> log.level
//	TODO_CLIENT_BASE_URL            -> client.base_url
//	TODO_PAGINATION_PAGE_SIZE       -> pagination.page_size
//	TODO_TOKEN                      -> client.token
//
// Unknown TODO_ variables are ignored.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.configDir == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		o.configDir = dir
	}

	k := koanf.New(".")

	// Layer 1: Defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: Base config shared by all profiles.
	if err := loadOptionalFile(k, filepath.Join(o.configDir, baseConfigName)); err != nil {
		return nil, err
	}

	// Layer 3: Profile-specific config.
	if profile != "" {
		if err := loadOptionalFile(k, filepath.Join(o.configDir, profile+".yaml")); err != nil {
			return nil, err
		}
	}

	// Layer 4: Environment variables with TODO_ prefix.
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			if koanfKey, ok := envAliases[key]; ok {
				return koanfKey, value
			}
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// loadOptionalFile merges a YAML file into k, skipping it when absent.
func loadOptionalFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// validateProfile checks that the profile name is safe. An empty profile
// means no profile file is loaded.
func validateProfile(profile string) error {
	if profile == "" {
		return nil
	}
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be blank")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "client.base_url", the env form "client_base_url"
// is computed by replacing dots with underscores. This allows unambiguous matching
// when an env var arrives (e.g. TODO_CLIENT_BASE_URL -> "client.base_url").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
