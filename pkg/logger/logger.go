package logger

import (
	"time"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/logger/config"
	myZap "github.com/lintang-b-s/osm-maneuver-guidance/pkg/logger/zap"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	LOG_LEVEL_KEY       = "log.level"
	LOG_TIME_FORMAT_KEY = "log.timeFormat"
	LOG_ENCODING_KEY    = "log.encoding"
)

// New builds the logger from the log.* keys of v, falling back to info level console output.
func New(v *viper.Viper) (*zap.Logger, error) {
	v.SetDefault(LOG_LEVEL_KEY, config.INFO_LEVEL)
	v.SetDefault(LOG_TIME_FORMAT_KEY, time.RFC3339Nano)
	v.SetDefault(LOG_ENCODING_KEY, config.CONSOLE_ENCODING)

	cfg := config.Configuration{
		Level:      v.GetString(LOG_LEVEL_KEY),
		TimeFormat: v.GetString(LOG_TIME_FORMAT_KEY),
		Encoding:   v.GetString(LOG_ENCODING_KEY),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return myZap.New(cfg)
}
