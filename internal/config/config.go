package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Rosuav/Choc/internal/errors"
)

// ConfigFileName is the name of the configuration file.
const ConfigFileName = ".chocimport.yaml"

// Config represents the complete .chocimport.yaml configuration.
type Config struct {
	// Extcalls are component functions called from outside the analyzed
	// file. Their return values are treated as content.
	Extcalls []string `yaml:"extcalls,omitempty"`

	// Namespaces maps constructor names to the namespace their argument
	// constructors belong to. Merged over the built-in default (SVG:
	// svg).
	Namespaces map[string]string `yaml:"namespaces,omitempty"`

	// Elements are extra constructor names recognized in addition to
	// the standard element table.
	Elements []string `yaml:"elements,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// Default creates a Config with default values.
func Default() *Config {
	return &Config{
		Namespaces: map[string]string{
			"SVG": "svg",
		},
	}
}

// Load reads configuration from the specified file path. A missing
// file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.New("E001").Wrap(err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E001").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Find walks up from startDir looking for a config file and loads the
// first one found. When no config file exists anywhere up the tree the
// defaults apply.
func Find(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Path returns the path where the config was loaded from, or "" for a
// default configuration.
func (c *Config) Path() string {
	return c.configPath
}

// IsExtcall reports whether name is configured as an externally-called
// component function.
func (c *Config) IsExtcall(name string) bool {
	for _, n := range c.Extcalls {
		if n == name {
			return true
		}
	}
	return false
}

// HasElement reports whether name is configured as an extra element
// constructor.
func (c *Config) HasElement(name string) bool {
	for _, n := range c.Elements {
		if n == name {
			return true
		}
	}
	return false
}

// NamespaceFor returns the namespace that name's argument constructors
// belong to, if name is namespace-mapped.
func (c *Config) NamespaceFor(name string) (string, bool) {
	ns, ok := c.Namespaces[name]
	return ns, ok
}

// applyDefaults merges the built-in defaults under the loaded values.
func (c *Config) applyDefaults() {
	if c.Namespaces == nil {
		c.Namespaces = make(map[string]string)
	}
	for name, ns := range Default().Namespaces {
		if _, ok := c.Namespaces[name]; !ok {
			c.Namespaces[name] = ns
		}
	}
}
