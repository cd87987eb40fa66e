package main

import (
	"os"

	"github.com/dfgomezp/titulares"
	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file.
//
//	bucket: /var/lib/titulares
//	sites:
//	  - source: eltiempo
//	    url: https://www.eltiempo.com
//	  - source: publimetro
//	    url: https://www.publimetro.co
type Config struct {
	Bucket string           `yaml:"bucket"`
	Sites  []titulares.Site `yaml:"sites"`
}

// LoadConfig reads and parses the config file at path. An empty path
// returns an empty config; missing fields fall back to defaults at the
// call site.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, titulares.Errorf(titulares.EINVALID, "failed to read config %q: %v", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, titulares.Errorf(titulares.EINVALID, "failed to parse config %q: %v", path, err)
	}
	return cfg, nil
}
