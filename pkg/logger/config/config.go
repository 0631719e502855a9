package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

const (
	INFO_LEVEL       = "info"
	CONSOLE_ENCODING = "console"
	JSON_ENCODING    = "json"
)

var ErrInvalidEncoding = errors.New("log encoding must be console or json")

type Configuration struct {
	Level      string
	TimeFormat string
	Encoding   string
}

// ZapLevel parses Level, e.g. "debug" or "WARN".
func (c Configuration) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Level)
}

func (c Configuration) Validate() error {
	if _, err := c.ZapLevel(); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.TimeFormat == "" {
		return errors.New("log time format must not be empty")
	}
	if c.Encoding != CONSOLE_ENCODING && c.Encoding != JSON_ENCODING {
		return ErrInvalidEncoding
	}
	return nil
}
