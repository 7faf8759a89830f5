package engine

import (
	"context"

	"github.com/hearthvox/hearthvox/pkg/audio"
)

// Request is one synthesis call. Text is required; the rest are per-call
// overrides of engine defaults.
type Request struct {
	Text string

	// Voice overrides the engine's configured default voice when set.
	Voice string

	// Instructions is a natural-language style directive prepended to the
	// text, for vendors that take no structured style parameters.
	Instructions string

	// Speed is accepted for interface compatibility. Engines whose remote
	// API has no numeric speed control warn and ignore it.
	Speed *float64
}

// Engine is the contract every pluggable TTS vendor implementation
// satisfies for the host platform.
type Engine interface {
	// Name returns the engine name for logging/metrics.
	Name() string
	// Synthesize turns text into one finished audio clip.
	Synthesize(ctx context.Context, req Request) (audio.Clip, error)
	// SupportedLanguages returns the BCP-47 tags the vendor handles.
	SupportedLanguages() []string
	// Close releases any held resources.
	Close() error
}
