package store

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .gantt config file or the
// GANTT_PATH environment variable, defaulting to ~/.gantt.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.gantt.db")
	viper.SetConfigName(".gantt") // .yaml is implicit
	viper.SetEnvPrefix("GANTT")
	viper.AutomaticEnv()

	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
