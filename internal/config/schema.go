package config

import "runtime"

// Config holds tocmark configuration.
// Stored at: ./config.yaml or ~/.tocmark/config.yaml
type Config struct {
	Pipeline  PipelineCfg  `mapstructure:"pipeline" yaml:"pipeline"`
	Extractor ExtractorCfg `mapstructure:"extractor" yaml:"extractor"`
	Watch     WatchCfg     `mapstructure:"watch" yaml:"watch"`
	Annotate  AnnotateCfg  `mapstructure:"annotate" yaml:"annotate"`
}

// PipelineCfg configures the entry resolution worker pool.
type PipelineCfg struct {
	Workers   int `mapstructure:"workers" yaml:"workers"`       // Worker goroutines (default: NumCPU)
	QueueSize int `mapstructure:"queue_size" yaml:"queue_size"` // Pool queue size
}

// ExtractorCfg configures the external plain-text extractor.
type ExtractorCfg struct {
	Binary         string `mapstructure:"binary" yaml:"binary"`                   // Extractor binary (supports ${ENV_VAR} syntax)
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // Per-document extraction timeout
}

// WatchCfg configures inbox-watch file stabilization.
type WatchCfg struct {
	StabilizeDelayMS  int  `mapstructure:"stabilize_delay_ms" yaml:"stabilize_delay_ms"`   // Delay between size checks
	StabilizeAttempts uint `mapstructure:"stabilize_attempts" yaml:"stabilize_attempts"`   // Max size checks before giving up
}

// AnnotateCfg configures heading marker emission.
type AnnotateCfg struct {
	MaxLevel int `mapstructure:"max_level" yaml:"max_level"` // Deepest ToC level emitted as a marker (capped at 6)
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineCfg{
			Workers:   runtime.NumCPU(),
			QueueSize: 1024,
		},
		Extractor: ExtractorCfg{
			Binary:         "pdftotext",
			TimeoutSeconds: 120,
		},
		Watch: WatchCfg{
			StabilizeDelayMS:  500,
			StabilizeAttempts: 20,
		},
		Annotate: AnnotateCfg{
			MaxLevel: 6,
		},
	}
}
