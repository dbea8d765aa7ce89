package types

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	Project   ProjectConfig   `mapstructure:"project" validate:"required"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// ProjectConfig holds project-related settings.
type ProjectConfig struct {
	RootDir string `mapstructure:"rootDir" validate:"required"`
	DataDir string `mapstructure:"dataDir" validate:"required"`
}

// DataConfig holds persistence configuration.
type DataConfig struct {
	File    string `mapstructure:"file" validate:"required"`
	Format  string `mapstructure:"format" validate:"required,oneof=json yaml toml"`
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
}

// GeneratorConfig holds the quest-generation service settings. An empty
// URL means local-only generation.
type GeneratorConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
	// RequestTimeoutSeconds controls the HTTP client timeout for generation calls.
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=1,max=600"`
}
