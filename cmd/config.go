package cmd

import (
	"github.com/spf13/viper"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/config"
)

// Config is the resolved command configuration.
type Config = config.Config

// LoadConfigFromCLI loads the Config from the CLI flags
func LoadConfigFromCLI() Config {
	return Config{
		Url:      viper.GetString("url"),
		TokenUrl: viper.GetString("token-url"),
		PageSize: viper.GetInt("page-size"),
		Theme:    viper.GetString("theme"),
	}
}
