// Package config loads balloon descriptions from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/balloon"
)

var (
	// ErrInvalidCornerRadius is returned for a corner_radius that is not
	// "oval", "none" or a number.
	ErrInvalidCornerRadius = errors.New("invalid corner_radius")

	// ErrInvalidSmoothening is returned for a corner_smoothening that is
	// neither "enabled", "disabled" nor a ratio mapping.
	ErrInvalidSmoothening = errors.New("invalid corner_smoothening")

	// ErrInvalidPlacement is returned for a placement other than
	// "outside" or "inside".
	ErrInvalidPlacement = errors.New("invalid placement")
)

// Config is the YAML description of a balloon. Every field is optional;
// unset fields take their values from balloon.DefaultConfiguration and
// DefaultRect.
type Config struct {
	Rect         RectConfig `yaml:"rect"`
	CornerRadius yaml.Node  `yaml:"corner_radius"`
	Stem         StemConfig `yaml:"stem"`
	Placement    string     `yaml:"placement,omitempty"`
}

// RectConfig is the balloon rectangle.
type RectConfig struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
}

// StemConfig is the stem description.
type StemConfig struct {
	Edge              string      `yaml:"edge,omitempty"`
	Offset            float64     `yaml:"offset"`
	Size              *SizeConfig `yaml:"size,omitempty"`
	CornerSmoothening yaml.Node   `yaml:"corner_smoothening"`
	TipSmoothenWidth  *float64    `yaml:"tip_smoothen_width,omitempty"`
}

// SizeConfig is a width and height pair.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ratiosConfig struct {
	WidthRatio  float64 `yaml:"width_ratio"`
	HeightRatio float64 `yaml:"height_ratio"`
}

// DefaultRect is the balloon body used when the file has no rect size.
var DefaultRect = balloon.XYWH(0, 0, 200, 120)

// Resolved contains the balloon described by a Config.
type Resolved struct {
	Rect          balloon.Rect
	Configuration balloon.Configuration
	// Inside reports whether the whole balloon, stem included, must fit
	// inside Rect.
	Inside bool
}

// Load reads and parses a YAML balloon description.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads path if it exists and returns an empty Config
// otherwise.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Parse parses a YAML balloon description.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balloon config: %w", err)
	}
	return &cfg, nil
}

// Resolve converts the YAML description into balloon values, filling in
// defaults.
func (c *Config) Resolve() (*Resolved, error) {
	out := balloon.DefaultConfiguration()

	radius, err := resolveCornerRadius(&c.CornerRadius, out.CornerRadius)
	if err != nil {
		return nil, err
	}
	out.CornerRadius = radius

	if edge := strings.TrimSpace(c.Stem.Edge); edge != "" {
		out.Stem.Edge, err = balloon.ParseEdge(edge)
		if err != nil {
			return nil, fmt.Errorf("stem.edge: %w", err)
		}
	}
	out.Stem.Offset = c.Stem.Offset
	if c.Stem.Size != nil {
		out.Stem.Size = balloon.Sz(c.Stem.Size.Width, c.Stem.Size.Height)
	}
	if c.Stem.TipSmoothenWidth != nil {
		out.Stem.TipSmoothenWidth = *c.Stem.TipSmoothenWidth
	}
	smoothening, err := resolveSmoothening(&c.Stem.CornerSmoothening, out.Stem.CornerSmoothening)
	if err != nil {
		return nil, err
	}
	out.Stem.CornerSmoothening = smoothening

	inside, err := resolvePlacement(c.Placement)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Rect:          c.Rect.resolve(),
		Configuration: out,
		Inside:        inside,
	}, nil
}

func (r RectConfig) resolve() balloon.Rect {
	w, h := DefaultRect.Width(), DefaultRect.Height()
	if r.Width != nil {
		w = *r.Width
	}
	if r.Height != nil {
		h = *r.Height
	}
	return balloon.XYWH(r.X, r.Y, w, h)
}

// ParseCornerRadius parses "oval", "none" or a number.
func ParseCornerRadius(s string) (balloon.CornerRadius, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oval":
		return balloon.Oval(), nil
	case "none":
		return balloon.NoCornerRadius, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return balloon.CornerRadius{}, fmt.Errorf("%w: %q", ErrInvalidCornerRadius, s)
	}
	return balloon.Fixed(v), nil
}

func resolveCornerRadius(n *yaml.Node, def balloon.CornerRadius) (balloon.CornerRadius, error) {
	if isUnset(n) {
		return def, nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return ParseCornerRadius(n.Value)
	default:
		return balloon.CornerRadius{}, fmt.Errorf("%w: line %d", ErrInvalidCornerRadius, n.Line)
	}
}

func resolveSmoothening(n *yaml.Node, def balloon.CornerSmoothening) (balloon.CornerSmoothening, error) {
	if isUnset(n) {
		return def, nil
	}
	switch n.Kind {
	case yaml.ScalarNode:
		switch strings.ToLower(strings.TrimSpace(n.Value)) {
		case "enabled":
			return balloon.SmootheningEnabled, nil
		case "disabled":
			return balloon.SmootheningDisabled, nil
		}
		return balloon.CornerSmoothening{}, fmt.Errorf("%w: %q", ErrInvalidSmoothening, n.Value)
	case yaml.MappingNode:
		var ratios ratiosConfig
		if err := n.Decode(&ratios); err != nil {
			return balloon.CornerSmoothening{}, fmt.Errorf("%w: %w", ErrInvalidSmoothening, err)
		}
		return balloon.Custom(ratios.WidthRatio, ratios.HeightRatio), nil
	default:
		return balloon.CornerSmoothening{}, fmt.Errorf("%w: line %d", ErrInvalidSmoothening, n.Line)
	}
}

// isUnset reports whether a node was absent or explicitly null.
func isUnset(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func resolvePlacement(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "outside":
		return false, nil
	case "inside":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidPlacement, s)
}
