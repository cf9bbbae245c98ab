package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Profile identifies the local student. Every submission row is keyed by
// the profile's ID, so the file must stay stable across runs.
type Profile struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DefaultPath resolves the profile file location next to the database:
// $XDG_DATA_HOME/coderoom/student.json, falling back to ~/.local/share.
func DefaultPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "coderoom", "student.json"), nil
}

// Load reads the profile at path. Returns (nil, nil) when none exists yet.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if p.ID == uuid.Nil {
		return nil, fmt.Errorf("profile %s has no student ID", path)
	}
	return &p, nil
}

// Create writes a fresh profile with a new student ID.
func Create(path, name string) (*Profile, error) {
	p := &Profile{ID: uuid.New(), Name: name}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write profile: %w", err)
	}
	return p, nil
}
