package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "ECOMDASH"

// Env holds the ECOMDASH_* overrides read from the process environment.
type Env struct {
	Theme  string `envconfig:"THEME"`
	Config string `envconfig:"CONFIG"`
	Debug  bool   `envconfig:"DEBUG"`
}

func ReadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Env{}, fmt.Errorf("reading %s_* environment: %w", envPrefix, err)
	}
	return env, nil
}

// Path returns the config file path, honouring ECOMDASH_CONFIG.
func (e Env) Path() string {
	if p := strings.TrimSpace(e.Config); p != "" {
		return p
	}
	return ConfigPath()
}

// Apply layers the environment on top of a loaded config.
func (e Env) Apply(cfg Config) Config {
	if t := strings.TrimSpace(e.Theme); t != "" {
		cfg.Theme = t
	}
	return cfg
}
