package config

import "os"

// Default configuration values.
const (
	defaultServiceName    = "complaint-classifier"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8000
	defaultConcurrency    = 10
	defaultArtifactDir    = "models"
	defaultMaxFeatures    = 5000
	defaultMinDocFreq     = 2
	defaultMaxDocFreq     = 0.95
	defaultMinTextLength  = 10
	defaultMaxTextLength  = 2000
	defaultTestFraction   = 0.2
	defaultCVFolds        = 5
	defaultMaxIterations  = 1000
	defaultLearningRate   = 0.5
	defaultL2Penalty      = 1.0
	defaultTrainSeed      = 42
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Config holds all configuration for the complaint classifier service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Model   ModelConfig   `yaml:"model"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"CLASSIFIER_PORT"        yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"              yaml:"debug"`
	Concurrency int    `env:"CLASSIFIER_CONCURRENCY" yaml:"concurrency"`
}

// ModelConfig holds feature extraction, training, and serving settings.
type ModelConfig struct {
	ArtifactDir   string  `env:"MODEL_ARTIFACT_DIR" yaml:"artifact_dir"`
	MaxFeatures   int     `yaml:"max_features"`
	MinDocFreq    int     `yaml:"min_doc_freq"`
	MaxDocFreq    float64 `yaml:"max_doc_freq"`
	MinTextLength int     `yaml:"min_text_length"`
	MaxTextLength int     `yaml:"max_text_length"`
	TestFraction  float64 `yaml:"test_fraction"`
	CVFolds       int     `yaml:"cv_folds"`
	MaxIterations int     `yaml:"max_iterations"`
	LearningRate  float64 `yaml:"learning_rate"`
	L2Penalty     float64 `yaml:"l2_penalty"`
	TrainSeed     int64   `yaml:"train_seed"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return LoadFileWithDefaults[Config](path, SetDefaults)
}

// LoadOrDefault loads configuration from path, falling back to pure defaults
// (plus env overrides) when no file exists there.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return Load(path)
}

// Default returns a configuration with all defaults applied and no file read.
// Used by tests and the trainer CLI when no config file is given.
func Default() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	return cfg
}

// SetDefaults applies default values to the config.
func SetDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setModelDefaults(&cfg.Model)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
}

func setModelDefaults(m *ModelConfig) {
	if m.ArtifactDir == "" {
		m.ArtifactDir = defaultArtifactDir
	}
	if m.MaxFeatures == 0 {
		m.MaxFeatures = defaultMaxFeatures
	}
	if m.MinDocFreq == 0 {
		m.MinDocFreq = defaultMinDocFreq
	}
	if m.MaxDocFreq == 0 {
		m.MaxDocFreq = defaultMaxDocFreq
	}
	if m.MinTextLength == 0 {
		m.MinTextLength = defaultMinTextLength
	}
	if m.MaxTextLength == 0 {
		m.MaxTextLength = defaultMaxTextLength
	}
	if m.TestFraction == 0 {
		m.TestFraction = defaultTestFraction
	}
	if m.CVFolds == 0 {
		m.CVFolds = defaultCVFolds
	}
	if m.MaxIterations == 0 {
		m.MaxIterations = defaultMaxIterations
	}
	if m.LearningRate == 0 {
		m.LearningRate = defaultLearningRate
	}
	if m.L2Penalty == 0 {
		m.L2Penalty = defaultL2Penalty
	}
	if m.TrainSeed == 0 {
		m.TrainSeed = defaultTrainSeed
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
