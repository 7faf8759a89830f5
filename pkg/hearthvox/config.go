package hearthvox

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the TTS subsystem configuration.
type Config struct {
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	Engine    EngineConfig `mapstructure:"engine"`
	Speech    SpeechConfig `mapstructure:"speech"`
}

// EngineConfig selects a TTS provider and carries its free-form settings.
type EngineConfig struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}

// SpeechConfig configures the platform-facing speech entity.
type SpeechConfig struct {
	UniqueID         string  `mapstructure:"unique_id"`
	Voice            string  `mapstructure:"voice"`
	Speed            float64 `mapstructure:"speed"`
	Chime            bool    `mapstructure:"chime"`
	MaxMessageLength int     `mapstructure:"max_message_length"`
}

func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("engine.provider", "gemini")
	v.SetDefault("speech.chime", false)
	v.SetDefault("speech.speed", 1.0)
	v.SetDefault("speech.max_message_length", 4096)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	return cfg, nil
}
