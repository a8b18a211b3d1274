package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

const defaultEnvPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

// Config reads settings from the environment, pre-populated from an .env file when one exists
type Config struct {
}

func New() *Config {
	once.Do(func() {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = defaultEnvPath
		}
		err := godotenv.Load(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatal("loading envs error: ", err)
			}
			log.Printf("no env file at %s, using process environment", path)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetInt returns def when key is unset or not a number
func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
