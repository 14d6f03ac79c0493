package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHEETSTACK_CONFIG", "/nonexistent/config.toml")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Path != ":memory:" {
		t.Fatalf("database.path = %q, want :memory:", cfg.Database.Path)
	}
	if len(cfg.Sheet.SnapPoints) != 2 || cfg.Sheet.SnapPoints[1] != 0.85 {
		t.Fatalf("snap points = %v, want defaults", cfg.Sheet.SnapPoints)
	}
	if cfg.UI.FPS != 60 {
		t.Fatalf("fps = %d, want 60", cfg.UI.FPS)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHEETSTACK_CONFIG", "/nonexistent/config.toml")
	t.Setenv("SHEETSTACK_UI_FPS", "30")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.FPS != 30 {
		t.Fatalf("fps = %d, want env override 30", cfg.UI.FPS)
	}
}
