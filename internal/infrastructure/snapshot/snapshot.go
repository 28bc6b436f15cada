// Package snapshot stores board documents in a compact binary form.
package snapshot

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/younwookim/arcade/internal/infrastructure/config"
)

// Extension is the file extension used for snapshots
const Extension = ".msgpack"

// Encode serializes a board document
func Encode(cfg *config.BoardConfig) ([]byte, error) {
	data, err := msgpack.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode deserializes a board document and validates its size
func Decode(data []byte) (*config.BoardConfig, error) {
	var cfg config.BoardConfig
	if err := msgpack.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w: %v", config.ErrMalformed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes a snapshot file
func Save(path string, cfg *config.BoardConfig) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot file
func Load(path string) (*config.BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Decode(data)
}
