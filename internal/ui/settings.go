package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds the editing-widget configuration. The conversion engine
// itself has no configuration; these knobs belong to the host widget.
type Settings struct {
	// MaxLength is a hard cap on document length in code points. A
	// mutation that would exceed it is rejected before it is applied.
	// Zero means unlimited.
	MaxLength int `json:"maxLength"`

	// Placeholder is shown in the edit pane while the document is empty.
	Placeholder string `json:"placeholder,omitempty"`

	// Rows limits the height of the edit pane. Display sizing only; zero
	// uses the full screen height.
	Rows int `json:"rows,omitempty"`

	// WrapWidth wraps preview text at this column. Zero uses the full
	// screen width.
	WrapWidth int `json:"wrapWidth,omitempty"`
}

// DefaultSettings returns the default widget settings.
func DefaultSettings() *Settings {
	return &Settings{
		Placeholder: "Start typing, or :open a file",
	}
}

// LoadSettings loads the settings from the config directory.
func LoadSettings(configDir string) (*Settings, error) {
	settingsPath := filepath.Join(configDir, "settings.json")

	// Fall back to defaults when the file doesn't exist yet
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if settings.MaxLength < 0 {
		settings.MaxLength = 0
	}

	return settings, nil
}

// SaveSettings saves the settings to the config directory.
func SaveSettings(configDir string, settings *Settings) error {
	settingsPath := filepath.Join(configDir, "settings.json")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(settingsPath, data, 0644)
}
