package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported storage engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// Config is the process-wide configuration, resolved once at startup and
// injected into the rest of the program.
type Config struct {
	Engine     string
	SQLitePath string

	DBHost     string
	DBName     string
	DBUser     string
	DBPassword string
	DBPort     int

	ServerAddr string
	LogLevel   string
	Env        string
}

// Load reads configuration from the environment. Engine selection follows the
// reference behavior: an explicit DB_ENGINE wins, otherwise a set DB_HOST
// implies mysql, otherwise the embedded sqlite engine is used.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_ENGINE", "")
	v.SetDefault("DB_PATH", "spaza.db")
	v.SetDefault("DB_PORT", 0)
	v.SetDefault("SERVER_ADDR", ":8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")

	cfg := Config{
		Engine:     strings.ToLower(strings.TrimSpace(v.GetString("DB_ENGINE"))),
		SQLitePath: v.GetString("DB_PATH"),
		DBHost:     v.GetString("DB_HOST"),
		DBName:     v.GetString("DB_NAME"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBPort:     v.GetInt("DB_PORT"),
		ServerAddr: v.GetString("SERVER_ADDR"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		Env:        v.GetString("APP_ENV"),
	}

	if cfg.Engine == "" {
		if cfg.DBHost != "" {
			cfg.Engine = EngineMySQL
		} else {
			cfg.Engine = EngineSQLite
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate fails startup on a misconfigured storage engine.
func (c *Config) validate() error {
	switch c.Engine {
	case EngineSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite engine requires DB_PATH")
		}
		return nil
	case EngineMySQL, EnginePostgres:
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" || c.DBPassword == "" {
			return fmt.Errorf("%s configuration missing: set DB_HOST, DB_NAME, DB_USER, DB_PASSWORD and optional DB_PORT", c.Engine)
		}
		if c.DBPort == 0 {
			if c.Engine == EngineMySQL {
				c.DBPort = 3306
			} else {
				c.DBPort = 5432
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported DB_ENGINE %q: use sqlite, mysql or postgres", c.Engine)
	}
}
