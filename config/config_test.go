package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 10, cfg.Judge0.MaxPolls)
	assert.Equal(t, time.Second, cfg.Judge0.PollInterval)
	assert.Equal(t, "interview.events", cfg.AMQP.Exchange)
	assert.Empty(t, cfg.AMQP.URL)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("SERVER_PORT", "9000")
	v.Set("JUDGE0_POLL_INTERVAL", "250ms")

	cfg := fromViper(v)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.Judge0.PollInterval)
}

func TestRedacted(t *testing.T) {
	cfg := Config{GeminiApiKey: "secret", Database: Database{Password: "pw"}}

	red := cfg.Redacted()

	assert.Equal(t, "****", red.GeminiApiKey)
	assert.Equal(t, "****", red.Database.Password)
	assert.Empty(t, red.Judge0.APIKey)
	assert.Equal(t, "secret", cfg.GeminiApiKey)
}
