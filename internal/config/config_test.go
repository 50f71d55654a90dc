package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `
server:
  addr: ":9090"
world:
  width: 128
  height: 64
  modules_file: report.json
generation:
  min_room_size: 8
  extra_edge_ratio: 0.4
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr not overridden: %q", cfg.Server.Addr)
	}
	if cfg.World.Width != 128 || cfg.World.Height != 64 || cfg.World.ModulesFile != "report.json" {
		t.Fatalf("world not overridden: %+v", cfg.World)
	}
	if cfg.Generation.MinRoomSize != 8 || cfg.Generation.ExtraEdgeRatio != 0.4 {
		t.Fatalf("generation not overridden: %+v", cfg.Generation)
	}
	if cfg.Generation.MaxRoomSize != 0 {
		t.Fatalf("unset generation fields should stay zero: %+v", cfg.Generation)
	}
}

func TestLoadRejectsBadDimensions(t *testing.T) {
	content := `
world:
  width: 0
  height: 64
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("zero width accepted")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed YAML accepted")
	}
}
