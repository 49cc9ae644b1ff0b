// Package logging builds the zerolog logger used by the command line tool.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level.
// An empty level means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// ParseLevel accepts the zerolog level names, case-insensitive.
func ParseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// Adapter exposes a zerolog.Logger through the bootloader.Logger interface.
type Adapter struct {
	Logger zerolog.Logger
}

func (a Adapter) Debug(msg string, keysAndValues ...interface{}) {
	a.Logger.Debug().Fields(pairs(keysAndValues)).Msg(msg)
}

func (a Adapter) Info(msg string, keysAndValues ...interface{}) {
	a.Logger.Info().Fields(pairs(keysAndValues)).Msg(msg)
}

func (a Adapter) Error(msg string, keysAndValues ...interface{}) {
	a.Logger.Error().Fields(pairs(keysAndValues)).Msg(msg)
}

// pairs turns alternating key/value arguments into a field map. A dangling
// key is kept with a nil value and non-string keys are formatted.
func pairs(kv []interface{}) map[string]interface{} {
	if len(kv) == 0 {
		return nil
	}
	fields := make(map[string]interface{}, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		var value interface{}
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		fields[key] = value
	}
	return fields
}
