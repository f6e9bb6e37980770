package config

import (
	"strings"

	"github.com/golang/glog"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mapgrid/geoscene/pkg/anchor"
	"github.com/mapgrid/geoscene/pkg/geometry"
)

// AppConfig holds the scene configuration: the anchor coordinate, the UTM
// zone the scene lives in and the optional terrain sources.
type AppConfig struct {
	k *koanf.Koanf
}

func NewAppConfig() *AppConfig {
	c := &AppConfig{k: koanf.New(".")}

	setDefaults(c.k)

	return c
}

// Load reads the given YAML files in order; later files override earlier
// ones. Returns true if at least one file loaded.
func (c *AppConfig) Load(filename ...string) bool {
	loaded := false

	for _, name := range filename {
		if err := c.k.Load(file.Provider(name), yaml.Parser()); err != nil {
			glog.Warningf("error loading config %s: %s", name, err.Error())
		} else {
			loaded = true
		}
	}

	return loaded
}

// LoadEnv overrides config keys from environment variables with the given
// prefix, e.g. GEOSCENE_UTM_ZONE -> utm.zone.
func (c *AppConfig) LoadEnv(prefix string) error {
	return c.k.Load(env.Provider(prefix, ".", func(s string) string {
		s1 := strings.ToLower(strings.TrimPrefix(s, prefix))
		for _, pr := range []string{"anchor_", "utm_", "elevation_"} {
			if strings.HasPrefix(s1, pr) {
				return strings.Replace(s1, "_", ".", 1)
			}
		}

		return s1
	}), nil)
}

func (c *AppConfig) Set(key string, v any) error {
	return c.k.Set(key, v)
}

// Anchor returns the configured anchor coordinate.
func (c *AppConfig) Anchor() geometry.Coordinate {
	return geometry.NewCoordinate(
		c.k.Float64("anchor.east"),
		c.k.Float64("anchor.north"),
		c.k.Float64("anchor.height"),
	)
}

func (c *AppConfig) UTMZone() int {
	return c.k.Int("utm.zone")
}

func (c *AppConfig) SouthernHemisphere() bool {
	return c.k.Bool("utm.south")
}

// MaxOffset returns the per-axis anchor window in meters.
func (c *AppConfig) MaxOffset() float64 {
	return c.k.Float64("max_offset")
}

// ElevationGrid returns the path of the terrain grid file, empty when no
// terrain is configured.
func (c *AppConfig) ElevationGrid() string {
	return c.k.String("elevation.grid")
}

// ElevationOffset returns the constant height used when no grid is
// configured.
func (c *AppConfig) ElevationOffset() float64 {
	return c.k.Float64("elevation.offset")
}

func (c *AppConfig) HasElevationOffset() bool {
	return c.k.Exists("elevation.offset")
}

func setDefaults(k *koanf.Koanf) {
	// ETRS89 / UTM zone 32N, anchor in the Hamburg docklands
	k.Set("utm.zone", 32)
	k.Set("utm.south", false)

	k.Set("anchor.east", 567475.0)
	k.Set("anchor.north", 5932475.0)
	k.Set("anchor.height", 0.0)

	k.Set("max_offset", anchor.MaxAnchorDistance)
}
