// Package config loads gifdecode's CLI defaults, modeled on pdfcpu's
// pkg/pdfcpu/model.Configuration: a single struct with package-level
// defaults, optionally overridden by a YAML file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// OutputFormat selects what `gifdecode extract` writes per frame.
type OutputFormat int

const (
	FormatPPM OutputFormat = iota
	FormatPNG
)

// Configuration holds the defaults applied to every gifdecode invocation
// unless overridden by a flag.
type Configuration struct {
	// Strict mirrors gifdecoder.ParseOptions.Strict.
	Strict bool `yaml:"strict"`

	// Format is the default output format for `extract`.
	Format OutputFormat `yaml:"-"`
	FormatName string `yaml:"format"`

	// OutDir is the default directory `extract` writes frames into.
	OutDir string `yaml:"outDir"`

	// MaxFrames caps how many frames `extract`/`inspect` process, 0 means
	// unbounded. This guards against pathological animations when gifdecode
	// is driven from a --manifest batch.
	MaxFrames int `yaml:"maxFrames"`
}

// NewDefaultConfiguration returns gifdecode's built-in defaults.
func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		Strict:     false,
		Format:     FormatPPM,
		FormatName: "ppm",
		OutDir:     ".",
		MaxFrames:  0,
	}
}

// Load reads a YAML configuration file and overlays it onto the defaults.
func Load(path string) (*Configuration, error) {
	c := NewDefaultConfiguration()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	switch c.FormatName {
	case "", "ppm":
		c.Format = FormatPPM
	case "png":
		c.Format = FormatPNG
	default:
		return nil, errors.Errorf("config %s: unknown format %q", path, c.FormatName)
	}
	return c, nil
}
