package placement

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLabelEncoderEncodesByIndex(t *testing.T) {
	enc, err := NewLabelEncoder("branch", []string{"CSE", "ECE", "EEE", "IT", "MECH"})
	if err != nil {
		t.Fatalf("NewLabelEncoder: %v", err)
	}

	cases := map[string]int{"CSE": 0, "ECE": 1, "EEE": 2, "IT": 3, "MECH": 4}
	for value, want := range cases {
		got, ok := enc.Encode(value)
		if !ok {
			t.Fatalf("expected %q to be known", value)
		}
		if got != want {
			t.Fatalf("Encode(%q)=%d, want %d", value, got, want)
		}
		again, _ := enc.Encode(value)
		if again != got {
			t.Fatalf("encoding %q is not stable: %d then %d", value, got, again)
		}
	}

	if _, ok := enc.Encode("AI&DS"); ok {
		t.Fatalf("expected AI&DS to be unknown")
	}
	if enc.Knows("cse") {
		t.Fatalf("encoder must be case sensitive")
	}
}

func TestNewLabelEncoderRejectsBadClasses(t *testing.T) {
	if _, err := NewLabelEncoder("branch", nil); !errors.Is(err, ErrArtifactLoad) {
		t.Fatalf("expected ErrArtifactLoad for empty classes, got %v", err)
	}
	if _, err := NewLabelEncoder("branch", []string{"CSE", "CSE"}); !errors.Is(err, ErrArtifactLoad) {
		t.Fatalf("expected ErrArtifactLoad for duplicates, got %v", err)
	}
}

func TestLoadLabelEncoder(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "intern.json")
	if err := os.WriteFile(good, []byte(`{"classes": ["No", "Yes"]}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	enc, err := LoadLabelEncoder("internship", good)
	if err != nil {
		t.Fatalf("LoadLabelEncoder: %v", err)
	}
	if code, _ := enc.Encode("Yes"); code != 1 {
		t.Fatalf("expected Yes=1, got %d", code)
	}

	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte(`{"classes": [`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadLabelEncoder("internship", corrupt); !errors.Is(err, ErrArtifactLoad) {
		t.Fatalf("expected ErrArtifactLoad for corrupt file, got %v", err)
	}
	if _, err := LoadLabelEncoder("internship", filepath.Join(dir, "missing.json")); !errors.Is(err, ErrArtifactLoad) {
		t.Fatalf("expected ErrArtifactLoad for missing file, got %v", err)
	}
}
