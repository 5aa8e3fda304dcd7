package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 64, cfg.Layout.Capacity)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "normal", cfg.Logging.ConsoleLogger.Level)
	assert.Equal(t, "none", cfg.Logging.FileLogger.Level)
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
layout:
  workers: 2
output:
  format: json
logging:
  console:
    level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Layout.Workers)
	assert.Equal(t, 64, cfg.Layout.Capacity, "defaults survive a partial file")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.ConsoleLogger.Level)
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	type tc struct {
		content string
	}

	tests := map[string]tc{
		"unknown field":   {content: "version: 1\nlayuot: {}\n"},
		"bad format":      {content: "version: 1\noutput: {format: xml}\n"},
		"bad version":     {content: "version: 2\n"},
		"negative worker": {content: "version: 1\nlayout: {workers: -1}\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfiguration(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestDump_RoundTrips(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)

	data, err := Dump(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	again, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoggingConfig_Prepare(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: path, Mode: "overwrite"},
	}

	log, err := conf.Prepare()
	require.NoError(t, err)
	log.Debug("scene computed")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scene computed")
}
