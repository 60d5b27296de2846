// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr      string    `yaml:"addr" json:"addr"`
	DataFile  string    `yaml:"data_file" json:"data_file"`
	Scheduler Scheduler `yaml:"scheduler" json:"scheduler"`
	Undo      Undo      `yaml:"undo" json:"undo"`
}

type Scheduler struct {
	IntervalSeconds int `yaml:"interval_seconds" json:"interval_seconds"`
}

type Undo struct {
	// MaxDepth caps the undo stack; 0 means unbounded.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`
}

func Default() Config {
	return Config{
		Addr:      ":8080",
		DataFile:  "data/projects.json",
		Scheduler: Scheduler{IntervalSeconds: 60},
		Undo:      Undo{MaxDepth: 0},
	}
}

// Load reads path over the defaults. A missing file is not an error; env
// overrides apply last either way.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TASKFLOW_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("TASKFLOW_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := getEnvInt("TASKFLOW_SCHEDULER_INTERVAL_SECONDS"); v > 0 {
		c.Scheduler.IntervalSeconds = v
	}
	if v := getEnvInt("TASKFLOW_UNDO_MAX_DEPTH"); v > 0 {
		c.Undo.MaxDepth = v
	}
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.DataFile == "" {
		c.DataFile = "data/projects.json"
	}
	if c.Scheduler.IntervalSeconds <= 0 {
		c.Scheduler.IntervalSeconds = 60
	}
	if c.Undo.MaxDepth < 0 {
		c.Undo.MaxDepth = 0
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
