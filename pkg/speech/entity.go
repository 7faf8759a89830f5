package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthvox/hearthvox/pkg/audio"
	"github.com/hearthvox/hearthvox/pkg/configutil"
	"github.com/hearthvox/hearthvox/pkg/engine"
	"github.com/hearthvox/hearthvox/pkg/errorsx"
	"github.com/hearthvox/hearthvox/pkg/logging"
)

const (
	defaultMaxMessageLength = 4096
	chimeDuration           = time.Second
	pauseDuration           = 300 * time.Millisecond
)

// EntityConfig configures the platform-facing speech entity.
type EntityConfig struct {
	UniqueID         string
	Model            string
	Voice            string
	Speed            float64
	Chime            bool
	MaxMessageLength int
}

// Entity hosts one TTS engine for the platform: it enforces message limits,
// resolves per-call options and optionally prefixes a notification chime.
type Entity struct {
	cfg EntityConfig
	eng engine.Engine
	log *slog.Logger
}

// callOptions are per-call overrides supplied by the platform.
type callOptions struct {
	Voice        string   `mapstructure:"voice"`
	Speed        *float64 `mapstructure:"speed"`
	Chime        *bool    `mapstructure:"chime"`
	Instructions string   `mapstructure:"instructions"`
}

func NewEntity(eng engine.Engine, cfg EntityConfig) *Entity {
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = defaultMaxMessageLength
	}
	if cfg.UniqueID == "" {
		cfg.UniqueID = uuid.NewString()
	}
	return &Entity{
		cfg: cfg,
		eng: eng,
		log: logging.NewComponentLogger(slog.Default(), "speech_entity"),
	}
}

func (e *Entity) UniqueID() string { return e.cfg.UniqueID }

// Name is a short display label derived from the model identifier.
func (e *Entity) Name() string { return modelLabel(e.cfg.Model) }

func (e *Entity) DefaultLanguage() string { return "en" }

func (e *Entity) SupportedLanguages() []string { return e.eng.SupportedLanguages() }

// DeviceInfo describes the entity for the platform's device registry.
func (e *Entity) DeviceInfo() map[string]string {
	return map[string]string{
		"identifier":   e.cfg.UniqueID,
		"model":        e.cfg.Model,
		"manufacturer": "Google",
	}
}

// GetTTSAudio synthesizes message and returns (format, audio bytes).
// Per-call options may override the configured voice, speed and chime
// toggle; an options speed is forwarded to the engine (which warns and
// ignores it when unsupported).
func (e *Entity) GetTTSAudio(ctx context.Context, message, language string, options map[string]any) (string, []byte, error) {
	if len(message) > e.cfg.MaxMessageLength {
		return "", nil, errorsx.Wrap(
			fmt.Errorf("message length %d exceeds maximum %d", len(message), e.cfg.MaxMessageLength),
			errorsx.ReasonMessageTooLong,
		)
	}

	var opts callOptions
	if err := configutil.DecodeSettings(options, &opts); err != nil {
		return "", nil, fmt.Errorf("decode tts options: %w", err)
	}

	req := engine.Request{
		Text:         message,
		Voice:        opts.Voice,
		Instructions: opts.Instructions,
		Speed:        opts.Speed,
	}
	if req.Voice == "" {
		req.Voice = e.cfg.Voice
	}

	clip, err := e.eng.Synthesize(ctx, req)
	if err != nil {
		e.log.Error("tts synthesis failed",
			slog.String("engine", e.eng.Name()),
			slog.String("language", language),
			slog.String("error", err.Error()))
		return "", nil, err
	}
	if clip.Empty() {
		return "", nil, errors.New("engine returned empty audio")
	}

	if !configutil.BoolValue(opts.Chime, e.cfg.Chime) {
		return "wav", clip.Data, nil
	}
	return "wav", e.withChime(clip.Data), nil
}

// withChime prepends a chime and a short pause matching the clip's PCM
// parameters. Failures degrade to the plain clip.
func (e *Entity) withChime(tts []byte) []byte {
	params, _, err := audio.DecodeWAV(tts)
	if err != nil {
		e.log.Error("cannot read tts wav parameters; skipping chime", slog.String("error", err.Error()))
		return tts
	}
	chime, err := audio.Chime(params, chimeDuration)
	if err != nil {
		e.log.Error("chime synthesis failed", slog.String("error", err.Error()))
		return tts
	}
	pause, err := audio.Silence(params, pauseDuration)
	if err != nil {
		e.log.Error("pause synthesis failed", slog.String("error", err.Error()))
		return tts
	}
	combined, err := audio.ConcatWAV(chime, pause, tts)
	if err != nil {
		e.log.Error("combining chime and tts audio failed", slog.String("error", err.Error()))
		return tts
	}
	return combined
}

// modelLabel shortens a model identifier for display,
// e.g. "gemini-2.5-flash-preview-tts" -> "2.5-FLASH-PREVIEW".
func modelLabel(model string) string {
	label := strings.ToLower(strings.TrimSpace(model))
	label = strings.TrimPrefix(label, "gemini-")
	label = strings.TrimSuffix(label, "-tts")
	if label == "" {
		return "TTS"
	}
	return strings.ToUpper(label)
}
