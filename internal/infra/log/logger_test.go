package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"safemap/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warning ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "safemap"

	var buf bytes.Buffer
	logger := newLogger(&buf, cfg, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("approved", slog.Int64("submission_id", 7))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "approved", line["msg"])
	assert.Equal(t, "safemap", line["service"])
	assert.Equal(t, "develop", line["env"])
	assert.EqualValues(t, 7, line["submission_id"])
}
