package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshalJSON(t *testing.T) {
	var opts struct {
		Delay Duration `json:"payment_delay"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"payment_delay":"2s"}`), &opts))
	assert.Equal(t, 2*time.Second, time.Duration(opts.Delay))

	require.NoError(t, json.Unmarshal([]byte(`{"payment_delay":1500000000}`), &opts))
	assert.Equal(t, 1500*time.Millisecond, time.Duration(opts.Delay))

	assert.Error(t, json.Unmarshal([]byte(`{"payment_delay":"soon"}`), &opts))
	assert.Error(t, json.Unmarshal([]byte(`{"payment_delay":true}`), &opts))
}

func TestDurationUnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	assert.Equal(t, 250*time.Millisecond, time.Duration(d))

	assert.Error(t, d.UnmarshalText([]byte("later")))
}

func TestDurationFlagValue(t *testing.T) {
	var d Duration
	require.NoError(t, d.Set("3s"))
	assert.Equal(t, "3s", d.String())
}
