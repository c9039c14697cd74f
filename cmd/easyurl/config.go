package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	Output    string `mapstructure:"output"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Base      string `mapstructure:"base"`
}

// loadConfig layers set flags over EASYURL_* env over the config file over flag defaults.
func loadConfig(flags *pflag.FlagSet, file string) (c config, err error) {
	v := viper.New()

	v.SetEnvPrefix("easyurl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base", "")

	err = v.BindPFlags(flags)
	if err != nil {
		return c, errors.Wrap(err, "bind flags")
	}

	if file != "" {
		v.SetConfigFile(file)

		err = v.ReadInConfig()
		if err != nil {
			return c, errors.Wrapf(err, "read config %v", file)
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, errors.Wrap(err, "decode config")
	}

	switch c.Output {
	case "yaml", "json", "text":
	default:
		return c, errors.Errorf("unsupported output format: %v", c.Output)
	}

	return c, nil
}
