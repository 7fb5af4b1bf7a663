// Package config loads clientbuddy settings from an optional config file,
// CLIENTBUDDY_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexanderramin/clientbuddy/internal/llm"
)

const envPrefix = "CLIENTBUDDY"

type Config struct {
	LogMode string
	Server  ServerConfig
	Cache   CacheConfig
	LLM     llm.LLMConfig
}

type ServerConfig struct {
	Addr        string
	CORSOrigins []string
}

// CacheConfig bounds the in-memory LRUs.
type CacheConfig struct {
	// Challenges is the number of daily challenge batches kept.
	Challenges int
	// Sessions is the number of live HTTP scenario sessions kept.
	Sessions int
}

// NewViper returns a viper instance with defaults and env binding set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.mode", "dev")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("cache.challenges", 8)
	v.SetDefault("cache.sessions", 256)
	llm.SetDefaults(v)
	return v
}

// Load reads path when set, else clientbuddy.yaml from the working
// directory or $HOME/.clientbuddy if present.
func Load(path string) (Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("clientbuddy")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.clientbuddy")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		LogMode: v.GetString("log.mode"),
		Server: ServerConfig{
			Addr:        v.GetString("server.addr"),
			CORSOrigins: splitList(v.GetStringSlice("server.cors_origins")),
		},
		Cache: CacheConfig{
			Challenges: v.GetInt("cache.challenges"),
			Sessions:   v.GetInt("cache.sessions"),
		},
		LLM: llm.LoadConfig(v),
	}
	if cfg.Cache.Challenges <= 0 {
		cfg.Cache.Challenges = 8
	}
	if cfg.Cache.Sessions <= 0 {
		cfg.Cache.Sessions = 256
	}
	return cfg
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
