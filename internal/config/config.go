// SPDX-License-Identifier: EPL-2.0

package config

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces the environment variables, e.g. STEREOFY_LOG_LEVEL.
const Prefix = "stereofy"

type Config struct {
	LogLevel  string `split_words:"true" default:"info"`
	LogFormat string `split_words:"true" default:"console"`
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic"),
		),
		validation.Field(&c.LogFormat,
			validation.Required,
			validation.In("console", "json"),
		),
	)
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	conf := &Config{}

	if err := envconfig.Process(Prefix, conf); err != nil {
		return nil, err
	}

	conf.LogLevel = strings.ToLower(conf.LogLevel)
	conf.LogFormat = strings.ToLower(conf.LogFormat)

	return conf, conf.Validate()
}
