package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hearthvox/hearthvox/pkg/audio"
	"github.com/hearthvox/hearthvox/pkg/engine"
	"github.com/hearthvox/hearthvox/pkg/errorsx"
	"github.com/hearthvox/hearthvox/pkg/logging"
	"github.com/hearthvox/hearthvox/pkg/resilience"
)

// Config configures the Gemini TTS engine.
//
// Voice must be one of the prebuilt Gemini voice names (e.g. "Kore",
// "Puck") and Model one of the Gemini TTS models (e.g.
// "gemini-2.5-flash-preview-tts"). Speed is accepted for engine-contract
// compatibility only; the API takes no numeric speed parameter. URL is
// retained from older engine settings and, when set, overrides the API base
// URL.
type Config struct {
	APIKey string
	Voice  string
	Model  string
	Speed  float64
	URL    string
}

// TTS synthesizes speech through Gemini's native TTS models. One remote
// call per clip; a failed call is retried once after a fixed delay.
type TTS struct {
	cfg   Config
	gen   generator
	retry resilience.RetryPolicy
	log   *slog.Logger
}

// generator is the slice of Client used by the synthesis path.
type generator interface {
	GenerateContent(ctx context.Context, model, prompt string, cfg *generationConfig) (*generateContentResponse, error)
}

// New builds the engine. Client initialization failure (such as a missing
// API key) is fatal and surfaces immediately, without retries.
func New(cfg Config) (*TTS, error) {
	client, err := NewClient(ClientConfig{APIKey: cfg.APIKey, BaseURL: cfg.URL})
	if err != nil {
		return nil, errorsx.Wrap(fmt.Errorf("initialize gemini client: %w", err), errorsx.ReasonEngineInit)
	}
	if cfg.Voice == "" {
		return nil, errorsx.Wrap(errors.New("voice is required"), errorsx.ReasonEngineInit)
	}
	if cfg.Model == "" {
		return nil, errorsx.Wrap(errors.New("model is required"), errorsx.ReasonEngineInit)
	}
	return &TTS{
		cfg:   cfg,
		gen:   client,
		retry: resilience.NewRetryPolicy(1, time.Second),
		log:   logging.NewComponentLogger(slog.Default(), "gemini_tts"),
	}, nil
}

func (t *TTS) Name() string { return "gemini_tts" }

// Synthesize turns text into one WAV clip. The per-request voice override
// wins over the configured default; instructions, when present, are
// prepended to the text as a style directive. Any failure of the remote
// call or of response validation is retried exactly once after a 1s delay,
// then wrapped and surfaced.
func (t *TTS) Synthesize(ctx context.Context, req engine.Request) (audio.Clip, error) {
	if req.Text == "" {
		return audio.Clip{}, errorsx.Wrap(errors.New("text is required"), errorsx.ReasonSynthesize)
	}

	voice := req.Voice
	if voice == "" {
		voice = t.cfg.Voice
	}

	prompt := req.Text
	if req.Instructions != "" {
		prompt = req.Instructions + "\n" + req.Text
	}

	if req.Speed != nil {
		t.log.Warn("gemini tts has no numeric speed control; use pacing instructions instead",
			slog.Float64("speed", *req.Speed))
	}

	genCfg := singleSpeakerAudioConfig(voice)

	policy := t.retry
	policy.OnAttempt = func(attempt int, err error) {
		t.log.Error("synthesis attempt failed",
			slog.Int("attempt", attempt),
			slog.String("model", t.cfg.Model),
			slog.String("error", err.Error()))
	}

	var clip audio.Clip
	err := policy.Do(ctx, func(ctx context.Context) error {
		resp, err := t.gen.GenerateContent(ctx, t.cfg.Model, prompt, genCfg)
		if err != nil {
			return err
		}
		encoded, err := extractInlineAudio(resp)
		if err != nil {
			return err
		}
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return errorsx.Wrap(fmt.Errorf("decode inline audio: %w", err), errorsx.ReasonMalformedResponse)
		}
		clip = audio.NewClip(raw)
		return nil
	})
	if err != nil {
		return audio.Clip{}, errorsx.Wrap(
			fmt.Errorf("fetch tts audio from gemini after retries: %w", err),
			errorsx.ReasonRetriesExhausted,
		)
	}
	return clip, nil
}

// extractInlineAudio walks candidates -> content -> parts -> inlineData with
// explicit presence checks so each malformed shape gets a specific error.
func extractInlineAudio(resp *generateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errorsx.Wrap(errors.New("no audio candidates in gemini response"), errorsx.ReasonMalformedResponse)
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", errorsx.Wrap(errors.New("gemini candidate has no content parts"), errorsx.ReasonMalformedResponse)
	}
	data := cand.Content.Parts[0].InlineData
	if data == nil || data.Data == "" {
		return "", errorsx.Wrap(errors.New("gemini response part has no inline audio data"), errorsx.ReasonMalformedResponse)
	}
	return data.Data, nil
}

// SupportedLanguages returns the BCP-47 tags Gemini TTS auto-detects.
// Static vendor data, not derived from any call.
func (t *TTS) SupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// Close satisfies the engine contract; the client holds nothing open.
func (t *TTS) Close() error { return nil }

var _ engine.Engine = (*TTS)(nil)
