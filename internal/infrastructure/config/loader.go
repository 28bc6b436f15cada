package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded base configurations
type GameConfig struct {
	Settings *Settings
}

// Loader loads documents from a config tree using fs.FS interface.
// Layout: settings.json, boards/<name>.json, actions/<name>.json
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadSettings loads settings.json, falling back to DefaultSettings when
// the file does not exist
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, "settings.json")
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings.json: %w", err)
	}

	cfg := DefaultSettings()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("settings.json: %w", err)
	}

	return cfg, nil
}

// LoadBoard loads boards/<name>.json
func (l *Loader) LoadBoard(name string) (*BoardConfig, error) {
	f, err := l.fsys.Open("boards/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read board %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	cfg, err := DecodeBoard(f)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", name, err)
	}
	return cfg, nil
}

// LoadActions loads actions/<name>.json
func (l *Loader) LoadActions(name string) (*ActionScript, error) {
	f, err := l.fsys.Open("actions/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read actions %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	script, err := DecodeActions(f)
	if err != nil {
		return nil, fmt.Errorf("actions %s: %w", name, err)
	}
	return script, nil
}

// LoadAll loads all base configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
	}, nil
}
