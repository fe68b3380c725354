// Package config loads the optional YAML settings file that tunes the page
// behaviors. Every field has a default matching the browser runtime; a
// missing file yields pure defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tejaspathak99/pagekit/pkg/behaviors/dismiss"
	"github.com/tejaspathak99/pagekit/pkg/behaviors/validate"
	"github.com/tejaspathak99/pagekit/pkg/confirm"
)

// Duration accepts Go duration strings ("5s", "250ms") or bare integers,
// which are read as milliseconds.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return nil
	}
	if value.Tag == "!!int" {
		var millis int64
		if err := value.Decode(&millis); err != nil {
			return fmt.Errorf("config: parse duration milliseconds: %w", err)
		}
		*d = Duration(time.Duration(millis) * time.Millisecond)
		return nil
	}
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("config: duration must be a string or integer milliseconds: %w", err)
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(trimmed)
	if err != nil {
		return fmt.Errorf("config: parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// DismissSettings tunes alert auto-dismissal.
type DismissSettings struct {
	Delay    Duration `yaml:"delay"`
	Selector string   `yaml:"selector"`
}

// ConfirmSettings tunes the destructive-action prompt.
type ConfirmSettings struct {
	Message string `yaml:"message"`
}

// ValidateSettings tunes the submit-time validation marking.
type ValidateSettings struct {
	MarkerClass string `yaml:"marker_class"`
}

// RuntimeSettings tunes where the browser runtime is mounted.
type RuntimeSettings struct {
	ScriptPath  string `yaml:"script_path"`
	SnippetPath string `yaml:"snippet_path"`
}

// Settings is the full behavior configuration.
type Settings struct {
	Dismiss  DismissSettings  `yaml:"dismiss"`
	Confirm  ConfirmSettings  `yaml:"confirm"`
	Validate ValidateSettings `yaml:"validate"`
	Runtime  RuntimeSettings  `yaml:"runtime"`
}

// Default returns the settings matching the stock browser runtime.
func Default() Settings {
	return Settings{
		Dismiss: DismissSettings{
			Delay:    Duration(dismiss.DefaultDelay),
			Selector: ".alert",
		},
		Confirm: ConfirmSettings{
			Message: confirm.DefaultMessage,
		},
		Validate: ValidateSettings{
			MarkerClass: validate.DefaultMarkerClass,
		},
		Runtime: RuntimeSettings{
			ScriptPath:  "/assets/pagekit.js",
			SnippetPath: "/assets/pagekit-snippet.html",
		},
	}
}

// Parse decodes YAML settings, filling omitted fields with defaults.
func Parse(data []byte) (Settings, error) {
	settings := Settings{}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, fmt.Errorf("config: parse settings: %w", err)
		}
	}
	settings.normalize()
	return settings, nil
}

// Load reads settings from path. A missing file is not an error: defaults
// apply.
func Load(path string) (Settings, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("config: read settings: %w", err)
	}
	return Parse(data)
}

func (s *Settings) normalize() {
	defaults := Default()
	if s.Dismiss.Delay <= 0 {
		s.Dismiss.Delay = defaults.Dismiss.Delay
	}
	if strings.TrimSpace(s.Dismiss.Selector) == "" {
		s.Dismiss.Selector = defaults.Dismiss.Selector
	}
	if strings.TrimSpace(s.Confirm.Message) == "" {
		s.Confirm.Message = defaults.Confirm.Message
	}
	if strings.TrimSpace(s.Validate.MarkerClass) == "" {
		s.Validate.MarkerClass = defaults.Validate.MarkerClass
	}
	if strings.TrimSpace(s.Runtime.ScriptPath) == "" {
		s.Runtime.ScriptPath = defaults.Runtime.ScriptPath
	}
	if strings.TrimSpace(s.Runtime.SnippetPath) == "" {
		s.Runtime.SnippetPath = defaults.Runtime.SnippetPath
	}
}
