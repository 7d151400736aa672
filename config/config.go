// Package config describes a sketch: window, grid, colorer, movers and force field.
package config

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/sketchbook/physics"
)

var ErrInvalidConfig = errors.New("invalid sketch config")

// HSV is a color in config files. Hue in degrees, saturation and value in [0, 1].
type HSV struct {
	H float64 `mapstructure:"h" yaml:"h"`
	S float64 `mapstructure:"s" yaml:"s"`
	V float64 `mapstructure:"v" yaml:"v"`
}

type Vec struct {
	X float64 `mapstructure:"x" yaml:"x"`
	Y float64 `mapstructure:"y" yaml:"y"`
}

// GridConfig uses CellSize when it is positive, Rows and Cols otherwise
type GridConfig struct {
	Rows     int     `mapstructure:"rows" yaml:"rows"`
	Cols     int     `mapstructure:"cols" yaml:"cols"`
	CellSize float64 `mapstructure:"cell_size" yaml:"cell_size"`
	Padding  float64 `mapstructure:"padding" yaml:"padding"`
}

// ColorerConfig selects a colorer by Kind. Only the fields of that kind are read.
type ColorerConfig struct {
	Kind string `mapstructure:"kind" yaml:"kind"`

	Colors []HSV `mapstructure:"colors" yaml:"colors,omitempty"` // alternating
	Start  HSV   `mapstructure:"start" yaml:"start"`             // interpolated
	End    HSV   `mapstructure:"end" yaml:"end"`

	Base   HSV     `mapstructure:"base" yaml:"base"` // noise, modulo
	HueMin float64 `mapstructure:"hue_min" yaml:"hue_min"`
	HueMax float64 `mapstructure:"hue_max" yaml:"hue_max"`

	Hues        []float64 `mapstructure:"hues" yaml:"hues,omitempty"` // palette
	Saturations []float64 `mapstructure:"saturations" yaml:"saturations,omitempty"`
	Values      []float64 `mapstructure:"values" yaml:"values,omitempty"`

	N        int             `mapstructure:"n" yaml:"n"`                          // modulo
	Children []ColorerConfig `mapstructure:"children" yaml:"children,omitempty"` // rotating, modulo

	// UpdateEvery advances the colorer every n frames; 0 leaves it to the keyboard
	UpdateEvery int `mapstructure:"update_every" yaml:"update_every"`
}

type MoversConfig struct {
	Count    int     `mapstructure:"count" yaml:"count"`
	Boundary string  `mapstructure:"boundary" yaml:"boundary"`
	Damping  float64 `mapstructure:"damping" yaml:"damping"`
	TopSpeed float64 `mapstructure:"top_speed" yaml:"top_speed"`
	MinSpeed float64 `mapstructure:"min_speed" yaml:"min_speed"`
	MinMass  float64 `mapstructure:"min_mass" yaml:"min_mass"`
	MaxMass  float64 `mapstructure:"max_mass" yaml:"max_mass"`
	Inherent Vec     `mapstructure:"inherent" yaml:"inherent"`
	Gravity  Vec     `mapstructure:"gravity" yaml:"gravity"`
	Friction bool    `mapstructure:"friction" yaml:"friction"`
	Wind     bool    `mapstructure:"wind" yaml:"wind"`
}

type FieldConfig struct {
	Enabled    bool    `mapstructure:"enabled" yaml:"enabled"`
	Show       bool    `mapstructure:"show" yaml:"show"`
	Resolution float64 `mapstructure:"resolution" yaml:"resolution"`
	TimeStep   float64 `mapstructure:"time_step" yaml:"time_step"`
}

// Config is the whole sketch
type Config struct {
	Width   int           `mapstructure:"width" yaml:"width"`
	Height  int           `mapstructure:"height" yaml:"height"`
	TPS     int           `mapstructure:"tps" yaml:"tps"`
	Seed    int64         `mapstructure:"seed" yaml:"seed"` // 0 seeds from the clock
	Grid    GridConfig    `mapstructure:"grid" yaml:"grid"`
	Colorer ColorerConfig `mapstructure:"colorer" yaml:"colorer"`
	Movers  MoversConfig  `mapstructure:"movers" yaml:"movers"`
	Field   FieldConfig   `mapstructure:"field" yaml:"field"`
}

// Default returns a rotating colorer over a 30x40 grid with fifty movers
// drifting through a force field
func Default() Config {
	return Config{
		Width:  800,
		Height: 600,
		TPS:    60,
		Grid: GridConfig{
			Rows: 30,
			Cols: 40,
		},
		Colorer: ColorerConfig{
			Kind: "rotating",
			Children: []ColorerConfig{
				{
					Kind:  "interpolated",
					Start: HSV{H: 200, S: 0.6, V: 0.9},
					End:   HSV{H: 320, S: 0.8, V: 0.6},
				},
				{
					Kind: "alternating",
					Colors: []HSV{
						{H: 39, S: 0.76, V: 0.98},
						{H: 38, S: 0.35, V: 0.98},
						{H: 116, S: 0.07, V: 0.78},
						{H: 96, S: 0.31, V: 0.40},
						{H: 84, S: 0.39, V: 0.20},
					},
				},
				{
					Kind:   "noise",
					Base:   HSV{H: 30, S: 0.7, V: 0.8},
					HueMin: 0,
					HueMax: 60,
				},
			},
		},
		Movers: MoversConfig{
			Count:    50,
			Boundary: physics.Bounce.String(),
			Damping:  physics.DefaultDamping,
			TopSpeed: physics.DefaultTopSpeed,
			MinSpeed: physics.DefaultMinSpeed,
			MinMass:  physics.DefaultMinMass,
			MaxMass:  physics.DefaultMaxMass,
			Gravity:  Vec{Y: -0.1},
			Friction: true,
		},
		Field: FieldConfig{
			Enabled:    true,
			Resolution: physics.Resolution,
			TimeStep:   1.0 / 60,
		},
	}
}

// Validate reports the first problem found
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "window %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tps %d", c.TPS)
	case c.Grid.CellSize < 0:
		return errors.Wrapf(ErrInvalidConfig, "grid cell size %v", c.Grid.CellSize)
	case c.Grid.CellSize == 0 && (c.Grid.Rows <= 0 || c.Grid.Cols <= 0):
		return errors.Wrapf(ErrInvalidConfig, "grid %dx%d", c.Grid.Rows, c.Grid.Cols)
	case c.Grid.Padding < 0:
		return errors.Wrapf(ErrInvalidConfig, "grid padding %v", c.Grid.Padding)
	case c.Colorer.Kind == "":
		return errors.Wrap(ErrInvalidConfig, "colorer kind missing")
	case c.Colorer.UpdateEvery < 0:
		return errors.Wrapf(ErrInvalidConfig, "colorer update_every %d", c.Colorer.UpdateEvery)
	case c.Movers.Count < 0:
		return errors.Wrapf(ErrInvalidConfig, "mover count %d", c.Movers.Count)
	case c.Movers.MinSpeed > c.Movers.TopSpeed:
		return errors.Wrapf(ErrInvalidConfig, "min speed %v above top speed %v", c.Movers.MinSpeed, c.Movers.TopSpeed)
	case c.Movers.MinMass <= 0 || c.Movers.MinMass > c.Movers.MaxMass:
		return errors.Wrapf(ErrInvalidConfig, "mass range [%v, %v]", c.Movers.MinMass, c.Movers.MaxMass)
	case c.Movers.Damping < 0 || c.Movers.Damping > 1:
		return errors.Wrapf(ErrInvalidConfig, "damping %v", c.Movers.Damping)
	case c.Field.Enabled && c.Field.Resolution <= 0:
		return errors.Wrapf(ErrInvalidConfig, "field resolution %v", c.Field.Resolution)
	case c.Field.TimeStep < 0:
		return errors.Wrapf(ErrInvalidConfig, "field time step %v", c.Field.TimeStep)
	}
	if _, err := physics.ParseBoundary(c.Movers.Boundary); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Load reads a YAML config. Keys missing from the file keep their default
// values; lists in the file replace the default lists.
func Load(path string) (Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "reading %s", path)
	}

	cfg := Default()
	replaceLists := func(dc *mapstructure.DecoderConfig) {
		dc.ZeroFields = true
	}
	if err := vp.Unmarshal(&cfg, replaceLists); err != nil {
		return Config{}, errors.Wrapf(err, "decoding %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Save writes cfg as YAML
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
