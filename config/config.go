package config

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Server Server
	Badger Badger
	JWT    JWT
}

type Server struct {
	Address string
	Port    int
}

type Badger struct {
	Path string
}

type JWT struct {
	Secret        string
	TTL           time.Duration
	RefreshWindow time.Duration
}

func MustLoad() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	viper.SetDefault("env", "dev")

	viper.SetDefault("server.address", "0.0.0.0")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("badger.path", "data/badger")

	viper.SetDefault("jwt.secret", "insecure-dev-secret")
	viper.SetDefault("jwt.ttl", "1h")
	viper.SetDefault("jwt.refresh_window", "168h")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file: %s", err)
			os.Exit(1)
		}
	}

	config := &Config{
		Env: viper.GetString("env"),
		Server: Server{
			Address: viper.GetString("server.address"),
			Port:    viper.GetInt("server.port"),
		},
		Badger: Badger{
			Path: viper.GetString("badger.path"),
		},
		JWT: JWT{
			Secret:        viper.GetString("jwt.secret"),
			TTL:           viper.GetDuration("jwt.ttl"),
			RefreshWindow: viper.GetDuration("jwt.refresh_window"),
		},
	}

	return config
}
