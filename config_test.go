package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/portfolio.db")
	t.Setenv("REVEAL_SPLIT", "grapheme")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VISITOR_RETENTION_MONTHS", "6")
	t.Setenv("TRACK_OUTBOUND", "false")
	t.Setenv("MAX_TIMELINE_STREAMS", "16")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/portfolio.db", cfg.DatabasePath)
	assert.Equal(t, "grapheme", cfg.RevealSplit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 6, cfg.RetentionMonths)
	assert.False(t, cfg.TrackOutbound)
	assert.Equal(t, 16, cfg.MaxStreams)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"split mode": {"REVEAL_SPLIT": "word"},
		"log level":  {"LOG_LEVEL": "loud"},
		"retention":  {"VISITOR_RETENTION_MONTHS": "0"},
		"not a bool": {"TRACK_OUTBOUND": "maybe"},
		"streams":    {"MAX_TIMELINE_STREAMS": "0"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("REVEAL_SPLIT", "rune")
			t.Setenv("LOG_LEVEL", "info")
			t.Setenv("VISITOR_RETENTION_MONTHS", "12")
			t.Setenv("TRACK_OUTBOUND", "true")
			t.Setenv("MAX_TIMELINE_STREAMS", "256")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := loadConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
