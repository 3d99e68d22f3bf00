package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewAppliesDefaults(t *testing.T) {
	cfg := New()
	if cfg.Accuracy != 16 {
		t.Fatalf("expected default accuracy 16, got %d", cfg.Accuracy)
	}
	if cfg.ShapeFor(7) != ShapeSymmetric {
		t.Fatalf("expected default shape symmetric for unconfigured cargo")
	}
}

func TestNewAppliesOptionsInOrder(t *testing.T) {
	cfg := New(
		WithAccuracy(4),
		WithAccuracy(8),
		WithShape(3, ShapeAntisymmetric),
	)
	if cfg.Accuracy != 8 {
		t.Fatalf("expected last option to win, got accuracy %d", cfg.Accuracy)
	}
	if cfg.ShapeFor(3) != ShapeAntisymmetric {
		t.Fatalf("expected cargo 3 antisymmetric")
	}
}

func TestWithAccuracyIgnoresZero(t *testing.T) {
	cfg := New(WithAccuracy(0))
	if cfg.Accuracy != 16 {
		t.Fatalf("expected default retained when given invalid accuracy, got %d", cfg.Accuracy)
	}
}

func TestValidateRejectsZeroRecalcInterval(t *testing.T) {
	cfg := New()
	cfg.RecalcInterval = 0
	if err := cfg.Validate(); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	contents := []byte(`
accuracy: 32
mod_distance: 150
distribution_shape:
  "0": antisymmetric
  "1": manual
`)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Accuracy != 32 {
		t.Fatalf("expected accuracy 32, got %d", cfg.Accuracy)
	}
	if cfg.ModDistance != 150 {
		t.Fatalf("expected mod_distance 150, got %d", cfg.ModDistance)
	}
	if cfg.ShapeFor(0) != ShapeAntisymmetric {
		t.Fatalf("expected cargo 0 antisymmetric")
	}
	if cfg.ShapeFor(1) != ShapeManual {
		t.Fatalf("expected cargo 1 manual")
	}
}
