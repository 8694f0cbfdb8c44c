// Package settings persists the player's display toggles between runs.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPath is where the game keeps its settings, relative to the working
// directory.
const DefaultPath = "data/settings.json"

// Key names one persisted setting as it appears in the file.
type Key string

const (
	KeyAntiAliasing  Key = "anti_aliasing"
	KeyScreenWidth   Key = "screen_width"
	KeyScreenHeight  Key = "screen_height"
	KeyShowAimLine   Key = "show_aim_line"
	KeyShowDebugInfo Key = "show_debug_info"
)

var knownKeys = map[Key]bool{
	KeyAntiAliasing:  true,
	KeyScreenWidth:   true,
	KeyScreenHeight:  true,
	KeyShowAimLine:   true,
	KeyShowDebugInfo: true,
}

// ErrNotToggle is returned by Toggle for keys that are not booleans.
var ErrNotToggle = errors.New("setting is not a toggle")

// Settings are the user-facing toggles and the last window size.
type Settings struct {
	AntiAliasing  bool `json:"anti_aliasing"`
	ScreenWidth   int  `json:"screen_width"`
	ScreenHeight  int  `json:"screen_height"`
	ShowAimLine   bool `json:"show_aim_line"`
	ShowDebugInfo bool `json:"show_debug_info"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		AntiAliasing:  false,
		ScreenWidth:   1024,
		ScreenHeight:  768,
		ShowAimLine:   true,
		ShowDebugInfo: false,
	}
}

// Load reads path and merges it over the defaults. Unknown keys are dropped
// and missing keys keep their default. On any read or decode error Load
// returns the defaults together with the error so the caller can log it and
// carry on.
func Load(path string, log *slog.Logger) (Settings, error) {
	if log == nil {
		log = slog.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("decode settings %s: %w", path, err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("decode settings %s: %w", path, err)
	}

	for _, k := range sortedKeys(raw) {
		if !knownKeys[Key(k)] {
			log.Warn("dropping unknown setting", "key", k)
		}
	}
	for k := range knownKeys {
		if _, ok := raw[string(k)]; !ok {
			log.Debug("missing setting, using default", "key", string(k))
		}
	}
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		d := Default()
		log.Warn("invalid screen size, using default",
			"width", s.ScreenWidth, "height", s.ScreenHeight)
		s.ScreenWidth, s.ScreenHeight = d.ScreenWidth, d.ScreenHeight
	}
	return s, nil
}

// Save writes s to path as indented JSON, creating the directory if needed.
func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Toggle flips a boolean setting and returns its new value.
func (s *Settings) Toggle(k Key) (bool, error) {
	var b *bool
	switch k {
	case KeyAntiAliasing:
		b = &s.AntiAliasing
	case KeyShowAimLine:
		b = &s.ShowAimLine
	case KeyShowDebugInfo:
		b = &s.ShowDebugInfo
	default:
		return false, fmt.Errorf("%w: %s", ErrNotToggle, k)
	}
	*b = !*b
	return *b, nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
