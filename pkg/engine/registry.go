package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hearthvox/hearthvox/pkg/errorsx"
)

// Factory builds an engine from a free-form settings map.
type Factory func(settings map[string]any) (Engine, error)

// Registry maps provider names to engine factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[normalize(name)] = factory
}

// Build resolves a provider by name and constructs it with settings.
func (r *Registry) Build(provider string, settings map[string]any) (Engine, error) {
	r.mu.RLock()
	factory := r.factories[normalize(provider)]
	r.mu.RUnlock()
	if factory == nil {
		return nil, errorsx.Wrap(fmt.Errorf("tts engine not registered: %s", provider), errorsx.ReasonEngineUnknown)
	}
	return factory(settings)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
