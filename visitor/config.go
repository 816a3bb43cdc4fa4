package visitor

import (
	"fmt"

	"github.com/Konsultn-Engineering/relsql/cache"
	"github.com/Konsultn-Engineering/relsql/dialect"
	"gopkg.in/yaml.v3"
)

// Config describes a Renderer.
type Config struct {
	Dialect       string `json:"dialect" yaml:"dialect"`
	Qualification string `json:"qualification" yaml:"qualification"`
	// CacheSize enables the rendered-query cache when positive.
	CacheSize int `json:"cache_size" yaml:"cache_size"`
}

// ParseConfig reads a Config from YAML. JSON documents parse as well.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := dialect.ByName(c.Dialect); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseQualification(c.Qualification); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache_size must not be negative, got %d", ErrInvalidConfig, c.CacheSize)
	}
	return nil
}

func NewRendererFromConfig(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d, _ := dialect.ByName(cfg.Dialect)
	q, _ := ParseQualification(cfg.Qualification)
	opts := []Option{WithDialect(d), WithQualification(q)}
	if cfg.CacheSize > 0 {
		qc, err := cache.NewQueryCache(cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCache(qc))
	}
	return NewRenderer(opts...), nil
}
