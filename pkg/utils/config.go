package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	Demo DemoConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type DemoConfig struct {
	// Seed runs the sample-data walkthrough on startup.
	Seed bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "restaurant-reviews")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DEMO_SEED", true)

	// Missing .env is fine, defaults and environment cover it
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Demo: DemoConfig{
			Seed: viper.GetBool("DEMO_SEED"),
		},
	}

	return config, nil
}
