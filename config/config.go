package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	Gemini       Gemini
	Judge0       Judge0
	AMQP         AMQP
	LogLevel     string
}

type Server struct {
	Port    string
	GinMode string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Gemini struct {
	Model   string
	Timeout time.Duration
}

type Judge0 struct {
	BaseURL      string
	APIKey       string
	APIHost      string
	MaxPolls     int
	PollInterval time.Duration
}

type AMQP struct {
	URL      string
	Exchange string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_NAME", "mockround")
	v.SetDefault("DATABASE_SSLMODE", "disable")

	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("LLM_TIMEOUT", 60*time.Second)

	v.SetDefault("JUDGE0_MAX_POLLS", 10)
	v.SetDefault("JUDGE0_POLL_INTERVAL", time.Second)

	v.SetDefault("AMQP_EXCHANGE", "interview.events")
}

func NewConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file, using environment and defaults")
	}

	config := fromViper(v)

	log.Info().Interface("config", config.Redacted()).Msg("Config loaded")
	return config, nil
}

func fromViper(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.LogLevel = v.GetString("LOG_LEVEL")

	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")

	config.GeminiApiKey = v.GetString("GEMINI_API_KEY")
	config.Gemini.Model = v.GetString("GEMINI_MODEL")
	config.Gemini.Timeout = v.GetDuration("LLM_TIMEOUT")

	config.Judge0.BaseURL = v.GetString("JUDGE0_BASE_URL")
	config.Judge0.APIKey = v.GetString("JUDGE0_API_KEY")
	config.Judge0.APIHost = v.GetString("JUDGE0_API_HOST")
	config.Judge0.MaxPolls = v.GetInt("JUDGE0_MAX_POLLS")
	config.Judge0.PollInterval = v.GetDuration("JUDGE0_POLL_INTERVAL")

	config.AMQP.URL = v.GetString("AMQP_URL")
	config.AMQP.Exchange = v.GetString("AMQP_EXCHANGE")

	return &config
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "****"
	}
	c.Database.Password = mask(c.Database.Password)
	c.GeminiApiKey = mask(c.GeminiApiKey)
	c.Judge0.APIKey = mask(c.Judge0.APIKey)
	c.AMQP.URL = mask(c.AMQP.URL)
	return c
}
