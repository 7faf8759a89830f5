package gemini

import (
	"github.com/hearthvox/hearthvox/pkg/configutil"
	"github.com/hearthvox/hearthvox/pkg/engine"
	"github.com/hearthvox/hearthvox/pkg/errorsx"
)

// Settings is the free-form config block for this engine.
type Settings struct {
	APIKey string  `mapstructure:"api_key"`
	Voice  string  `mapstructure:"voice"`
	Model  string  `mapstructure:"model"`
	Speed  float64 `mapstructure:"speed"`
	URL    string  `mapstructure:"url"`
}

var settingsSchema = configutil.Schema{
	Required: []string{"api_key", "voice", "model"},
	Optional: []string{"speed", "url"},
}

// Factory builds the engine from a settings map, for registry use.
func Factory(settings map[string]any) (engine.Engine, error) {
	if err := configutil.ValidateSettings(settings, settingsSchema); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonEngineSettings)
	}
	s := Settings{Speed: 1.0}
	if err := configutil.DecodeSettings(settings, &s); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonEngineSettings)
	}
	return New(Config{
		APIKey: s.APIKey,
		Voice:  s.Voice,
		Model:  s.Model,
		Speed:  s.Speed,
		URL:    s.URL,
	})
}
