// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/taigrr/dirtree/internal/logging"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable overriding the config location.
const EnvPath = "DIRTREE_CONFIG"

type (
	// Config holds dirtree settings.
	Config struct {
		Root     string    `yaml:"root"`
		LogLevel string    `yaml:"log_level"`
		MCP      MCPConfig `yaml:"mcp"`
	}

	// MCPConfig holds settings for the MCP server.
	MCPConfig struct {
		Root     string `yaml:"root"`
		MaxLines int    `yaml:"max_lines"`
	}
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Root:     ".",
		LogLevel: logging.DefaultLevel,
	}
}

// Path returns the config file location: $DIRTREE_CONFIG when set,
// otherwise dirtree/config.yaml under the user config directory.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "dirtree", "config.yaml"), nil
}

// Load reads the config at Path. A missing file yields Default, and so
// does a missing location: without $DIRTREE_CONFIG and with no user config
// directory (for example $HOME unset) there is no file to read.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields Default.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %s - %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level %q", c.LogLevel)
		}
	}
	if c.MCP.MaxLines < 0 {
		return fmt.Errorf("mcp.max_lines cannot be negative: %d", c.MCP.MaxLines)
	}
	return nil
}

// StartPath picks the directory to render: the positional argument when
// given, else the configured root, else ".".
func (c Config) StartPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if root := strings.TrimSpace(c.Root); root != "" {
		return root
	}
	return "."
}
