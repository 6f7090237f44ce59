package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Renderer    RendererConfig    `mapstructure:"renderer" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration. Checkpoints and the
// rendered statistics page live under the root directory.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// IngestionConfig holds log ingestion configuration.
type IngestionConfig struct {
	// LogsDir is the directory monitored for access-log files.
	LogsDir string `mapstructure:"logs_dir" validate:"required"`
}

// AggregationConfig holds the aggregation engine configuration. The window
// length must be a whole multiple of the slide interval; LoadConfig rejects
// configurations that violate this.
type AggregationConfig struct {
	WindowLengthSeconds   int `mapstructure:"window_length_seconds" validate:"required,min=1"`
	SlideIntervalSeconds  int `mapstructure:"slide_interval_seconds" validate:"required,min=1"`
	CheckpointEveryCycles int `mapstructure:"checkpoint_every_cycles" validate:"required,min=1"`
	TopN                  int `mapstructure:"top_n" validate:"required,min=1"`
}

func (c AggregationConfig) WindowLength() time.Duration {
	return time.Duration(c.WindowLengthSeconds) * time.Second
}

func (c AggregationConfig) SlideInterval() time.Duration {
	return time.Duration(c.SlideIntervalSeconds) * time.Second
}

// RendererConfig holds statistics page output configuration.
type RendererConfig struct {
	// OutputFile is the rendered page's key under the file storage root.
	OutputFile string `mapstructure:"output_file" validate:"required"`
}
