package save

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultName = "The Adventurer"
	fileName    = "flags.yaml"
)

// Flags is everything the game remembers between runs.
type Flags struct {
	Name         string `yaml:"name"`
	TutorialSeen bool   `yaml:"tutorial_seen"`
}

// DefaultDir is climb/ under the user config directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("save: config dir: %w", err)
	}
	return filepath.Join(base, "climb"), nil
}

// Load reads flags from dir. A missing file yields defaults.
func Load(dir string) (Flags, error) {
	flags := Flags{Name: DefaultName}
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if errors.Is(err, fs.ErrNotExist) {
		return flags, nil
	}
	if err != nil {
		return flags, fmt.Errorf("save: load %s: %w", dir, err)
	}
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return Flags{Name: DefaultName}, fmt.Errorf("save: unmarshal %s: %w", fileName, err)
	}
	if flags.Name == "" {
		flags.Name = DefaultName
	}
	return flags, nil
}

func Store(dir string, flags Flags) error {
	data, err := yaml.Marshal(flags)
	if err != nil {
		return fmt.Errorf("save: marshal: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: mkdir %s: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return fmt.Errorf("save: write %s: %w", fileName, err)
	}
	return nil
}
