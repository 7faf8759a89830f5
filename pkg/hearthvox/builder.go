package hearthvox

import (
	"github.com/hearthvox/hearthvox/pkg/engine"
	"github.com/hearthvox/hearthvox/pkg/providers/gemini"
	"github.com/hearthvox/hearthvox/pkg/speech"
)

// NewEngineRegistry returns a registry with the built-in providers.
func NewEngineRegistry() *engine.Registry {
	r := engine.NewRegistry()
	r.Register("gemini", gemini.Factory)
	return r
}

// BuildEngine resolves the configured provider and constructs it.
func BuildEngine(reg *engine.Registry, cfg Config) (engine.Engine, error) {
	return reg.Build(cfg.Engine.Provider, cfg.Engine.Settings)
}

// BuildEntity wraps an engine in the platform speech entity.
func BuildEntity(eng engine.Engine, cfg Config) *speech.Entity {
	return speech.NewEntity(eng, speech.EntityConfig{
		UniqueID:         cfg.Speech.UniqueID,
		Model:            modelFromSettings(cfg.Engine.Settings),
		Voice:            cfg.Speech.Voice,
		Speed:            cfg.Speech.Speed,
		Chime:            cfg.Speech.Chime,
		MaxMessageLength: cfg.Speech.MaxMessageLength,
	})
}

func modelFromSettings(settings map[string]any) string {
	if m, ok := settings["model"].(string); ok {
		return m
	}
	return ""
}
