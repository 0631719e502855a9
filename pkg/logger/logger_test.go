package logger

import (
	"testing"

	"github.com/lintang-b-s/osm-maneuver-guidance/pkg/logger/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Defaults(t *testing.T) {
	v := viper.New()
	log, err := New(v)
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.Equal(t, config.CONSOLE_ENCODING, v.GetString(LOG_ENCODING_KEY))
}

func TestNew_DebugJSON(t *testing.T) {
	v := viper.New()
	v.Set(LOG_LEVEL_KEY, "debug")
	v.Set(LOG_ENCODING_KEY, config.JSON_ENCODING)

	log, err := New(v)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_Invalid(t *testing.T) {
	v := viper.New()
	v.Set(LOG_LEVEL_KEY, "loud")
	_, err := New(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set(LOG_ENCODING_KEY, "xml")
	_, err = New(v)
	assert.ErrorIs(t, err, config.ErrInvalidEncoding)
}
