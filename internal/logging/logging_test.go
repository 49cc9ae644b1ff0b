package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagelight/go-dmxboot/bootloader"
)

var _ bootloader.Logger = Adapter{}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{" error ", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Int("page", 16).Msg("sending page")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "sending page")
	assert.Contains(t, out, "page=16")

	_, err = New(&buf, "chatty")
	assert.Error(t, err)
}

func TestAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	a := Adapter{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

	a.Info("page sent", "page", 17, "bytes", 64)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "page sent", entry["message"])
	assert.Equal(t, float64(17), entry["page"])
	assert.Equal(t, float64(64), entry["bytes"])
}

func TestAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	a := Adapter{Logger: zerolog.New(&buf).Level(zerolog.ErrorLevel)}

	a.Debug("debug")
	a.Info("info")
	assert.Zero(t, buf.Len())

	a.Error("failed", "err", "timeout")
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"err":"timeout"`)
}

func TestPairs(t *testing.T) {
	assert.Nil(t, pairs(nil))
	assert.Equal(t, map[string]interface{}{"a": 1, "b": nil}, pairs([]interface{}{"a", 1, "b"}))
	assert.Equal(t, map[string]interface{}{"7": "x"}, pairs([]interface{}{7, "x"}))
}
