package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

const validConfig = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
ingestion:
  logs_dir: ./logs
aggregation:
  window_length_seconds: 30
  slide_interval_seconds: 5
  checkpoint_every_cycles: 5
  top_n: 10
renderer:
  output_file: log_stats.html
`

func TestLoadConfig_ValidConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)
	assert.Equal(t, "./logs", cfg.Ingestion.LogsDir)
	assert.Equal(t, 30, cfg.Aggregation.WindowLengthSeconds)
	assert.Equal(t, 5, cfg.Aggregation.SlideIntervalSeconds)
	assert.Equal(t, 5, cfg.Aggregation.CheckpointEveryCycles)
	assert.Equal(t, 10, cfg.Aggregation.TopN)
	assert.Equal(t, "log_stats.html", cfg.Renderer.OutputFile)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	missingPort := `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
ingestion:
  logs_dir: ./logs
aggregation:
  window_length_seconds: 30
  slide_interval_seconds: 5
  checkpoint_every_cycles: 5
  top_n: 10
renderer:
  output_file: log_stats.html
`

	cfg, err := LoadConfig(writeConfigFile(t, missingPort))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "port")
}

func TestLoadConfig_MissingLogsDir(t *testing.T) {
	missingLogsDir := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
ingestion: {}
aggregation:
  window_length_seconds: 30
  slide_interval_seconds: 5
  checkpoint_every_cycles: 5
  top_n: 10
renderer:
  output_file: log_stats.html
`

	cfg, err := LoadConfig(writeConfigFile(t, missingLogsDir))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "logsdir")
}

func TestLoadConfig_WindowNotMultipleOfSlide(t *testing.T) {
	badWindow := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
ingestion:
  logs_dir: ./logs
aggregation:
  window_length_seconds: 30
  slide_interval_seconds: 7
  checkpoint_every_cycles: 5
  top_n: 10
renderer:
  output_file: log_stats.html
`

	cfg, err := LoadConfig(writeConfigFile(t, badWindow))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a multiple of")
}

func TestLoadConfig_NonPositiveDurations(t *testing.T) {
	zeroSlide := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
ingestion:
  logs_dir: ./logs
aggregation:
  window_length_seconds: 30
  slide_interval_seconds: 0
  checkpoint_every_cycles: 5
  top_n: 10
renderer:
  output_file: log_stats.html
`

	cfg, err := LoadConfig(writeConfigFile(t, zeroSlide))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "slideintervalseconds")
}

func TestAggregationConfig_Durations(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "30s", cfg.Aggregation.WindowLength().String())
	assert.Equal(t, "5s", cfg.Aggregation.SlideInterval().String())
}
