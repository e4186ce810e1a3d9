package config

import (
	"fmt"

	"github.com/larynjahor/pushpop/pkg/driver"
	"github.com/spf13/viper"
)

const (
	DefaultFile   = "test.txt"
	DefaultOutput = string(driver.FormatText)
)

// Load reads the resolved settings out of v. Flags, environment and the
// config file have already been merged by viper.
func Load(v *viper.Viper) (ret Config, _ error) {
	v.SetDefault("file", DefaultFile)
	v.SetDefault("output", DefaultOutput)

	if err := v.Unmarshal(&ret); err != nil {
		return ret, fmt.Errorf("decode config: %w", err)
	}

	format, err := driver.ParseFormat(ret.Output)
	if err != nil {
		return ret, err
	}

	ret.Format = format

	return ret, nil
}

type Config struct {
	File    string `mapstructure:"file"`
	Output  string `mapstructure:"output"`
	Debug   bool   `mapstructure:"debug"`
	LogFile string `mapstructure:"log-file"`

	Format driver.Format `mapstructure:"-"`
}
