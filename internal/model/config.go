package model

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds all civicscore settings
type Config struct {
	Realm  Realm        `yaml:"realm" mapstructure:"realm"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Colors ColorConfig  `yaml:"colors" mapstructure:"colors"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// Realm describes the jurisdiction set being scored and how it is worded
type Realm struct {
	Name         string       `yaml:"name" mapstructure:"name" validate:"required"`
	DocumentType DocumentType `yaml:"document_type" mapstructure:"document_type" validate:"oneof=statute policy"`
	EntityTerm   string       `yaml:"entity_term" mapstructure:"entity_term"` // e.g., "municipality", "school district"
	DomainTerm   string       `yaml:"domain_term" mapstructure:"domain_term"` // e.g., "topic"
}

// EngineConfig controls the scoring engine
type EngineConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers" validate:"min=1,max=64"` // Concurrent entity lookups
}

// StoreConfig controls the file-system document store client
type StoreConfig struct {
	DataDir           string        `yaml:"data_dir" mapstructure:"data_dir" validate:"required"`
	CacheEnabled      bool          `yaml:"cache_enabled" mapstructure:"cache_enabled"`
	CacheTTL          time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl" validate:"min=0"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second" validate:"min=0"` // 0 disables limiting
	Burst             int           `yaml:"burst" mapstructure:"burst" validate:"min=0"`
}

// ColorConfig defines the score gradient endpoints
type ColorConfig struct {
	Low     string `yaml:"low" mapstructure:"low" validate:"hexcolor"`
	High    string `yaml:"high" mapstructure:"high" validate:"hexcolor"`
	Neutral string `yaml:"neutral" mapstructure:"neutral" validate:"hexcolor"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Format    string `yaml:"format" mapstructure:"format" validate:"oneof=table json"`
	LogFormat string `yaml:"log_format" mapstructure:"log_format" validate:"oneof=text json"`
	Verbose   bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Realm: DefaultRealm(),
		Engine: EngineConfig{
			Workers: 5,
		},
		Store: StoreConfig{
			DataDir:           "./data",
			CacheEnabled:      true,
			CacheTTL:          5 * time.Minute,
			RequestsPerSecond: 0,
			Burst:             10,
		},
		Colors: ColorConfig{
			Low:     "#d73027",
			High:    "#1a9850",
			Neutral: "#cccccc",
		},
		Output: OutputConfig{
			Format:    "table",
			LogFormat: "text",
		},
	}
}

// DefaultRealm is a statute-based realm of municipalities
func DefaultRealm() Realm {
	return Realm{
		Name:         "default",
		DocumentType: DocumentStatute,
		EntityTerm:   "municipality",
		DomainTerm:   "domain",
	}
}

// Validate checks the configuration against its constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
