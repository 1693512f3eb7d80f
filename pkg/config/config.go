package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/henderiw/realset/pkg/constraint"
	"github.com/henderiw/realset/pkg/intervalset"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config is a list of constraint definitions.
type Config struct {
	Constraints []Constraint `toml:"constraint" yaml:"constraints"`
}

// Constraint defines a named set of allowed values. Intervals are in
// bracket notation, e.g. "[-40, 85]" or "(100, inf)".
type Constraint struct {
	Name      string            `toml:"name" yaml:"name"`
	Labels    map[string]string `toml:"labels" yaml:"labels"`
	Intervals []string          `toml:"intervals" yaml:"intervals"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported config file %s, expecting .toml, .yaml or .yml", path)
}

// Load reads the config file at path.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Config, error) {
	var c Config
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return &c, nil
}

// Table builds a constraint table from c. Intervals that do not parse or are
// not valid are left out of their constraint and reported in the returned
// error together with any constraint the table refused; the table holds
// everything else.
func (c *Config) Table(v constraint.ValidationFn) (constraint.Table, error) {
	t, err := constraint.NewTable(nil, v)
	if err != nil {
		return nil, err
	}

	var errm error
	for _, def := range c.Constraints {
		set, err := intervalset.Parse(def.Intervals...)
		if err != nil {
			logrus.WithError(err).WithField("constraint", def.Name).Warn("dropped intervals")
			errm = errors.Join(errm, fmt.Errorf("constraint %s: %w", def.Name, err))
		}
		if err := t.Claim(def.Name, set, def.Labels); err != nil {
			errm = errors.Join(errm, err)
			continue
		}
		logrus.WithField("constraint", def.Name).WithField("set", set.String()).Debug("constraint loaded")
	}
	return t, errm
}
