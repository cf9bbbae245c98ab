package profile

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestLoad_MissingReturnsNil(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "student.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil profile, got %+v", p)
	}
}

func TestCreateThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "student.json")

	created, err := Create(path, "Ada")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("created profile has no ID")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ID != created.ID || loaded.Name != "Ada" {
		t.Errorf("loaded %+v, want %+v", loaded, created)
	}
}
