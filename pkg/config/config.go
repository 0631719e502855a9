package config

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg"
	"github.com/spf13/viper"
)

const (
	ENV_PREFIX = "GUIDANCE"

	ARROW_COLOR_KEY        = "arrow.color"
	ARROW_BORDER_COLOR_KEY = "arrow.borderColor"
	ARROW_ANCHOR_LAYER_KEY = "arrow.anchorLayer"
	ARROW_ICON_SIZE_KEY    = "arrow.iconSize"
	LANE_COLOR_KEY         = "lane.color"
	LANE_GLYPH_SIZE_KEY    = "lane.glyphSize"
	LANE_ATLAS_WORKERS_KEY = "lane.atlasWorkers"
	INPUT_ROUTE_KEY        = "input.route"
	INPUT_OSM_KEY          = "input.osm"
	OUTPUT_DIR_KEY         = "output.dir"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	hexColorPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

type Config struct {
	ArrowColor       string
	ArrowBorderColor string
	AnchorLayer      string
	ArrowIconSize    int
	LaneColor        string
	LaneGlyphSize    int
	AtlasWorkers     int
	RoutePath        string
	OsmPath          string
	OutputDir        string
}

// NewViper returns a viper instance reading GUIDANCE_* environment variables,
// e.g. GUIDANCE_ARROW_COLOR for arrow.color.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ARROW_COLOR_KEY, pkg.DEFAULT_ARROW_COLOR)
	v.SetDefault(ARROW_BORDER_COLOR_KEY, pkg.DEFAULT_ARROW_BORDER_COLOR)
	v.SetDefault(ARROW_ANCHOR_LAYER_KEY, pkg.DEFAULT_ANCHOR_LAYER)
	v.SetDefault(ARROW_ICON_SIZE_KEY, pkg.DEFAULT_ARROW_ICON_SIZE)
	v.SetDefault(LANE_COLOR_KEY, pkg.DEFAULT_LANE_COLOR)
	v.SetDefault(LANE_GLYPH_SIZE_KEY, pkg.DEFAULT_LANE_GLYPH_SIZE)
	v.SetDefault(LANE_ATLAS_WORKERS_KEY, runtime.NumCPU())
	v.SetDefault(INPUT_ROUTE_KEY, "./data/route.json")
	v.SetDefault(INPUT_OSM_KEY, "")
	v.SetDefault(OUTPUT_DIR_KEY, "./out")
}

// Load applies defaults, reads configFile when it is not empty and validates the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		ArrowColor:       v.GetString(ARROW_COLOR_KEY),
		ArrowBorderColor: v.GetString(ARROW_BORDER_COLOR_KEY),
		AnchorLayer:      v.GetString(ARROW_ANCHOR_LAYER_KEY),
		ArrowIconSize:    v.GetInt(ARROW_ICON_SIZE_KEY),
		LaneColor:        v.GetString(LANE_COLOR_KEY),
		LaneGlyphSize:    v.GetInt(LANE_GLYPH_SIZE_KEY),
		AtlasWorkers:     v.GetInt(LANE_ATLAS_WORKERS_KEY),
		RoutePath:        v.GetString(INPUT_ROUTE_KEY),
		OsmPath:          v.GetString(INPUT_OSM_KEY),
		OutputDir:        v.GetString(OUTPUT_DIR_KEY),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for key, color := range map[string]string{
		ARROW_COLOR_KEY:        c.ArrowColor,
		ARROW_BORDER_COLOR_KEY: c.ArrowBorderColor,
		LANE_COLOR_KEY:         c.LaneColor,
	} {
		if !hexColorPattern.MatchString(color) {
			return fmt.Errorf("%w: %s must be a hex color, got %q", ErrInvalidConfig, key, color)
		}
	}
	if c.ArrowIconSize <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, ARROW_ICON_SIZE_KEY)
	}
	if c.LaneGlyphSize <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, LANE_GLYPH_SIZE_KEY)
	}
	if c.AtlasWorkers <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, LANE_ATLAS_WORKERS_KEY)
	}
	return nil
}
