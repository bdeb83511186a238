package logutil_test

import (
	"bytes"
	"testing"

	"github.com/BrandyMint/moysklad/logutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zerolog.Level
	}{
		{name: "trace level", input: "trace", expected: zerolog.TraceLevel},
		{name: "debug level", input: "debug", expected: zerolog.DebugLevel},
		{name: "info level", input: "info", expected: zerolog.InfoLevel},
		{name: "warn level", input: "warn", expected: zerolog.WarnLevel},
		{name: "error level", input: "error", expected: zerolog.ErrorLevel},
		{name: "fatal level", input: "fatal", expected: zerolog.FatalLevel},
		{name: "panic level", input: "panic", expected: zerolog.PanicLevel},
		{name: "disabled", input: "disabled", expected: zerolog.Disabled},
		{name: "unknown defaults to info", input: "verbose", expected: zerolog.InfoLevel},
		{name: "empty defaults to info", input: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := logutil.ParseZerologLevel(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logutil.New("error", &buf)
	logger.Debug().Msg("hidden")
	require.Empty(t, buf.String())

	logger.Error().Msg("shown")
	require.Contains(t, buf.String(), `"message":"shown"`)
	require.Contains(t, buf.String(), `"component":"moysklad"`)
}
