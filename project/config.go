package project

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "opentik"
	configFileType = "yaml"

	cfgKeyColor      = "color"
	cfgKeyExtensions = "extensions"
)

// Config is the project configuration read from opentik.yaml.
type Config struct {
	// Color enables colored output for the pretty formatter.
	Color bool
	// Extensions lists the file extensions treated as tik documents.
	Extensions []string
}

// LoadConfig reads opentik.yaml from the given directory using Viper.
// A missing file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyColor, true)
	v.SetDefault(cfgKeyExtensions, []string{".tik"})
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Color:      v.GetBool(cfgKeyColor),
		Extensions: v.GetStringSlice(cfgKeyExtensions),
	}, nil
}
