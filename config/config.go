package config

import (
	"github.com/spf13/viper"
)

const (
	RepositoryMemory = "memory"
	RepositoryMySQL  = "mysql"
)

type Config struct {
	App        AppConfig
	Repository RepositoryConfig
	DB         DBConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type RepositoryConfig struct {
	Type string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// LoadConfig reads configuration from an optional .env file and the process
// environment. Environment variables take precedence over the file.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// The .env file is a local development convenience; in containers
	// everything arrives through the environment.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REPOSITORY_TYPE", RepositoryMemory)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Repository: RepositoryConfig{
			Type: viper.GetString("REPOSITORY_TYPE"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
	}

	return config, nil
}
