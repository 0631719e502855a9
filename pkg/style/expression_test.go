package style

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	e := NewInterpolate(Stop{Zoom: 22, Value: 13}, Stop{Zoom: 10, Value: 2.6})

	assert.InDelta(t, 2.6, e.Evaluate(5), 1e-9)
	assert.InDelta(t, 2.6, e.Evaluate(10), 1e-9)
	assert.InDelta(t, 7.8, e.Evaluate(16), 1e-9)
	assert.InDelta(t, 13, e.Evaluate(22), 1e-9)
	assert.InDelta(t, 13, e.Evaluate(30), 1e-9)
	assert.Equal(t, 0.0, Interpolate{}.Evaluate(12))

	buf, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `["interpolate",["linear"],["zoom"],10,2.6,22,13]`, string(buf))
}

func TestStep(t *testing.T) {
	e := NewStep(0, Stop{Zoom: 14, Value: 1})

	assert.Equal(t, 0.0, e.Evaluate(10))
	assert.Equal(t, 0.0, e.Evaluate(13.99))
	assert.Equal(t, 1.0, e.Evaluate(14))
	assert.Equal(t, 1.0, e.Evaluate(20))

	buf, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `["step",["zoom"],0,14,1]`, string(buf))
}
