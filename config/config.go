// Package config loads pipeline settings from a YAML file, with
// defaults that work against the public catalog API.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Catalog  CatalogConfig `yaml:"catalog"`
	Graph    GraphConfig   `yaml:"graph"`
	Data     DataConfig    `yaml:"data"`
	Database string        `yaml:"database_url"`
}

type CatalogConfig struct {
	BaseUrl     string   `yaml:"base_url"`
	Year        string   `yaml:"year"`
	Term        string   `yaml:"term"`
	Subject     string   `yaml:"subject"`
	Concurrency int      `yaml:"concurrency"`
	MaxRetries  int      `yaml:"max_retries"`
	Sleep       Duration `yaml:"sleep"`
}

// Duration accepts YAML scalars in time.ParseDuration form, like
// "250ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

type GraphConfig struct {
	Seed         int64 `yaml:"seed"`
	Iterations   int   `yaml:"iterations"`
	IncludeCoreq bool  `yaml:"include_coreq"`
}

// DataConfig names the files the pipeline stages read and write.
type DataConfig struct {
	Dir       string `yaml:"dir"`
	Courses   string `yaml:"courses"`
	Parsed    string `yaml:"parsed"`
	GraphFile string `yaml:"graph"`
	Positions string `yaml:"positions"`
}

func Default() Config {
	return Config{
		Catalog: CatalogConfig{
			Concurrency: 12,
			MaxRetries:  3,
			Sleep:       Duration(100 * time.Millisecond),
		},
		Graph: GraphConfig{
			Seed:         42,
			Iterations:   300,
			IncludeCoreq: true,
		},
		Data: DataConfig{
			Dir:       "data",
			Courses:   "courses.json",
			Parsed:    "courses_parsed.json",
			GraphFile: "graph.json",
			Positions: "positions.json",
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the
// defaults unchanged. DATABASE_URL in the environment overrides the
// file's database_url either way.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %v: %w", path, err)
		}
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database = url
	}
	if cfg.Catalog.Concurrency <= 0 {
		cfg.Catalog.Concurrency = Default().Catalog.Concurrency
	}
	if cfg.Graph.Iterations <= 0 {
		cfg.Graph.Iterations = Default().Graph.Iterations
	}
	return cfg, nil
}
