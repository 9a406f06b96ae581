package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"development"`
	Port     string `env:"PORT" env-default:"8088"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	DBType    string `env:"STORAGE_BACKEND" env-default:"file"`
	DBDSN     string `env:"POSTGRES_DSN"`
	FileUsers string `env:"USERS_FILE" env-default:"data/users.json"`
	FileEntry string `env:"ENTRIES_FILE" env-default:"data/entries.json"`
	FileTools string `env:"USER_TOOLS_FILE" env-default:"data/user_tools.json"`

	AuthToken     string `env:"AUTH_TOKEN" env-default:"MOCK-TOKEN"`
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`

	ScoreServiceURL string `env:"SCORE_SERVICE_URL"`
	RAGServiceURL   string `env:"RAG_SERVICE_URL"`
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads configuration from the environment (plus an optional .env file)
// exactly once. Priority: ENV > .env > defaults.
func Load() *Config {
	once.Do(func() {
		c := &Config{}
		if _, err := os.Stat(".env"); err == nil {
			if err := cleanenv.ReadConfig(".env", c); err != nil {
				panic(fmt.Sprintf("Invalid .env: %v", err))
			}
		} else if err := cleanenv.ReadEnv(c); err != nil {
			panic(fmt.Sprintf("Invalid env config: %v", err))
		}
		if err := c.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && (c.FileEntry == "" || c.FileTools == "") {
		return errors.New("file storage requires ENTRIES_FILE and USER_TOOLS_FILE to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthJWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required outside development")
	}
	return nil
}
