package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hexagrid/internal/board"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	wd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestWriteDefaultThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "hexagrid.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("expected refusal to overwrite")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want %+v", cfg, Default())
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	body := "hex_size: 9\nradius: 4\norphans: prune\nexpand_on_select: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HEXAGRID_PAN_STEP", "7")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HexSize != 9 || cfg.Radius != 4 || cfg.ExpandOnSelect || cfg.PanStep != 7 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.OrphanPolicy() != board.OrphanPrune {
		t.Errorf("orphan policy = %q", cfg.OrphanPolicy())
	}
	if cfg.SaveFile != Default().SaveFile {
		t.Errorf("save_file = %q, want default", cfg.SaveFile)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.HexSize = 0 }},
		{"negative spacing", func(c *Config) { c.Spacing = -1 }},
		{"negative radius", func(c *Config) { c.Radius = -2 }},
		{"huge radius", func(c *Config) { c.Radius = 100000 }},
		{"radius just over cap", func(c *Config) { c.Radius = MaxRadius + 1 }},
		{"zero pan step", func(c *Config) { c.PanStep = 0 }},
		{"no save file", func(c *Config) { c.SaveFile = "" }},
		{"bad orphans", func(c *Config) { c.Orphans = "shred" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	c := Default()
	c.Radius = MaxRadius
	if err := c.Validate(); err != nil {
		t.Errorf("radius at cap rejected: %v", err)
	}
}
