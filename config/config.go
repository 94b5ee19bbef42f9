package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	Conf *AppConfig
	once sync.Once
	k    *koanf.Koanf
)

type AppConfig struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	JWT      JWTConfig      `koanf:"jwt"`
	Media    MediaConfig    `koanf:"media"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Host         string `koanf:"host"`
	Port         int    `koanf:"port"`
	Username     string `koanf:"username"`
	Password     string `koanf:"password"`
	Database     string `koanf:"database"`
	SSLMode      bool   `koanf:"sslmode"`
	LogLevel     string `koanf:"log_level"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	MaxLifetime  int    `koanf:"max_lifetime"` // seconds
}

type JWTConfig struct {
	Secret     string `koanf:"secret"`
	ExpireTime int    `koanf:"expire_time"` // hours
}

type MediaConfig struct {
	// Root directory for stored recipe images
	Root string `koanf:"root"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

// Load reads the yaml config file, then lets environment variables
// override it. Safe to call more than once; only the first call loads.
func Load(configPath string) error {
	var err error
	once.Do(func() {
		// .env is optional, absence is not an error
		if err = godotenv.Load(); err != nil {
			log.Printf("warning: could not load .env file: %v", err)
			err = nil
		}

		k = koanf.New(".")

		if err = k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			err = fmt.Errorf("failed to load config file: %w", err)
			return
		}

		// Environment variables override the file
		if err = k.Load(env.Provider("", ".", func(s string) string {
			return strings.Replace(strings.ToLower(s), "_", ".", -1)
		}), nil); err != nil {
			log.Printf("failed to load environment variables: %v", err)
			err = nil
		}

		Conf = &AppConfig{}
		if err = k.Unmarshal("", Conf); err != nil {
			err = fmt.Errorf("failed to unmarshal config: %w", err)
			return
		}

		// Timeouts are written as plain seconds in the file
		Conf.Server.ReadTimeout = Conf.Server.ReadTimeout * time.Second
		Conf.Server.WriteTimeout = Conf.Server.WriteTimeout * time.Second
	})

	return err
}

// MustLoad loads the configuration and panics on failure.
func MustLoad(configPath string) {
	if err := Load(configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
}

func GetString(key string) string {
	if k == nil {
		log.Fatal("config is not initialized")
	}
	return k.String(key)
}

func GetInt(key string) int {
	if k == nil {
		log.Fatal("config is not initialized")
	}
	return k.Int(key)
}

func GetBool(key string) bool {
	if k == nil {
		log.Fatal("config is not initialized")
	}
	return k.Bool(key)
}
