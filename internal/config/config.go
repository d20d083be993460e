package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type SourceConfig struct {
	URL            string `yaml:"url"`
	UserAgent      string `yaml:"user_agent"`
	Accept         string `yaml:"accept"`
	AcceptLanguage string `yaml:"accept_language"`
	Referer        string `yaml:"referer"`
	TimeoutSec     int    `yaml:"timeout_sec"`
	RespectRobots  bool   `yaml:"respect_robots"`
}

type OutputConfig struct {
	Path string `yaml:"path"`
}

type DBConfig struct {
	Connection string `yaml:"connection"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type UpdaterConfig struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	DB     DBConfig     `yaml:"db"`
}

// Default returns the built-in configuration: the stock Scilit source page,
// a browser-like header set and the local JSON output, with the history
// archive disabled.
func Default() *UpdaterConfig {
	return &UpdaterConfig{
		Source: SourceConfig{
			URL: "https://www.scilit.com/sources/96056",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
				"AppleWebKit/537.36 (KHTML, like Gecko) " +
				"Chrome/120.0.0.0 Safari/537.36",
			Accept:         "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			AcceptLanguage: "pt-BR,pt;q=0.9,en;q=0.8",
			Referer:        "https://www.scilit.com/",
			TimeoutSec:     30,
		},
		Output: OutputConfig{
			Path: "remunom-scilit.json",
		},
		DB: DBConfig{
			Database:   "remunom",
			Collection: "snapshot_history",
		},
	}
}

// LoadConfig reads path when it exists and overlays it on the defaults.
// A missing file is not an error: the defaults alone reproduce a stock run.
func LoadConfig(path string) (*UpdaterConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
