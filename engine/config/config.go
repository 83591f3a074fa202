// Package config loads orbit controls tuning from TOML or YAML files and watches them for changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-orbit/engine/controls"
)

// ErrUnsupportedFormat is returned for files whose extension is neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Format selects the decoder for a config file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
//
// Parameters:
//   - path: the config file path (.toml, .yaml or .yml)
//
// Returns:
//   - Format: the matching format
//   - error: ErrUnsupportedFormat for any other extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// File mirrors controls.Config with every field optional. Absent fields keep their
// default, so leaving out a limit keeps it unbounded. Angles are in radians.
type File struct {
	SmoothTime         *float32 `toml:"smooth_time" yaml:"smooth_time"`
	DraggingSmoothTime *float32 `toml:"dragging_smooth_time" yaml:"dragging_smooth_time"`
	MaxSpeed           *float32 `toml:"max_speed" yaml:"max_speed"`

	MinDistance *float32 `toml:"min_distance" yaml:"min_distance"`
	MaxDistance *float32 `toml:"max_distance" yaml:"max_distance"`
	MinZoom     *float32 `toml:"min_zoom" yaml:"min_zoom"`
	MaxZoom     *float32 `toml:"max_zoom" yaml:"max_zoom"`

	MinPolarAngle   *float32 `toml:"min_polar_angle" yaml:"min_polar_angle"`
	MaxPolarAngle   *float32 `toml:"max_polar_angle" yaml:"max_polar_angle"`
	MinAzimuthAngle *float32 `toml:"min_azimuth_angle" yaml:"min_azimuth_angle"`
	MaxAzimuthAngle *float32 `toml:"max_azimuth_angle" yaml:"max_azimuth_angle"`

	DollySpeed    *float32 `toml:"dolly_speed" yaml:"dolly_speed"`
	RestThreshold *float32 `toml:"rest_threshold" yaml:"rest_threshold"`

	DollyToCursor *bool `toml:"dolly_to_cursor" yaml:"dolly_to_cursor"`
	InfinityDolly *bool `toml:"infinity_dolly" yaml:"infinity_dolly"`

	BoundaryFriction       *float32 `toml:"boundary_friction" yaml:"boundary_friction"`
	BoundaryEnclosesCamera *bool    `toml:"boundary_encloses_camera" yaml:"boundary_encloses_camera"`
}

// Apply overlays the fields present in f onto cfg.
//
// Parameters:
//   - cfg: the base configuration
//
// Returns:
//   - controls.Config: cfg with every present field replaced
func (f File) Apply(cfg controls.Config) controls.Config {
	set(&cfg.SmoothTime, f.SmoothTime)
	set(&cfg.DraggingSmoothTime, f.DraggingSmoothTime)
	set(&cfg.MaxSpeed, f.MaxSpeed)
	set(&cfg.MinDistance, f.MinDistance)
	set(&cfg.MaxDistance, f.MaxDistance)
	set(&cfg.MinZoom, f.MinZoom)
	set(&cfg.MaxZoom, f.MaxZoom)
	set(&cfg.MinPolarAngle, f.MinPolarAngle)
	set(&cfg.MaxPolarAngle, f.MaxPolarAngle)
	set(&cfg.MinAzimuthAngle, f.MinAzimuthAngle)
	set(&cfg.MaxAzimuthAngle, f.MaxAzimuthAngle)
	set(&cfg.DollySpeed, f.DollySpeed)
	set(&cfg.RestThreshold, f.RestThreshold)
	set(&cfg.DollyToCursor, f.DollyToCursor)
	set(&cfg.InfinityDolly, f.InfinityDolly)
	set(&cfg.BoundaryFriction, f.BoundaryFriction)
	set(&cfg.BoundaryEnclosesCamera, f.BoundaryEnclosesCamera)
	return cfg
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Decode parses data in the given format. Unknown keys are rejected.
//
// Parameters:
//   - data: raw file contents
//   - format: the encoding of data
//
// Returns:
//   - File: the decoded fields
//   - error: a decode error, or ErrUnsupportedFormat
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document decodes to EOF
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, err
		}
	default:
		return File{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return f, nil
}

// Load reads path, overlays it on controls.DefaultConfig and validates the result.
//
// Parameters:
//   - path: a .toml, .yaml or .yml file
//
// Returns:
//   - controls.Config: the loaded configuration
//   - error: a read, decode or validation error (validation errors wrap controls.ErrInvalidConfig)
func Load(path string) (controls.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return controls.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return controls.Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Decode(data, format)
	if err != nil {
		return controls.Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg := f.Apply(controls.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return controls.Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
