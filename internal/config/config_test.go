package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Water.PlaneLevel != 10 {
		t.Errorf("expected plane level 10, got %f", cfg.Water.PlaneLevel)
	}
	if cfg.Water.WaveScale != 0.6 {
		t.Errorf("expected wave scale 0.6, got %f", cfg.Water.WaveScale)
	}
	if cfg.Water.RefractiveIndex != 1.33 {
		t.Errorf("expected refractive index 1.33, got %f", cfg.Water.RefractiveIndex)
	}
	if cfg.Water.Extinction != [3]float32{15, 75, 300} {
		t.Errorf("unexpected extinction defaults: %v", cfg.Water.Extinction)
	}
	if cfg.Water.SurfaceExtent != 200 {
		t.Errorf("expected surface extent 200, got %f", cfg.Water.SurfaceExtent)
	}
	if cfg.Water.SurfaceCells != 400 {
		t.Errorf("expected 400 surface cells, got %d", cfg.Water.SurfaceCells)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

water:
  plane_level: 5
  wave_scale: 1.2
  refractive_index: 1.5
  extinction: [9, 7, 3]
  max_distortion_distance: 20
  surface_extent: 100
  surface_cells: 200
  normal_map_path: "WaterNormalHeight.png"

logging:
  level: "debug"
  log_file: "water.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Water.PlaneLevel != 5 {
		t.Errorf("expected plane level 5, got %f", cfg.Water.PlaneLevel)
	}
	if cfg.Water.WaveScale != 1.2 {
		t.Errorf("expected wave scale 1.2, got %f", cfg.Water.WaveScale)
	}
	if cfg.Water.Extinction != [3]float32{9, 7, 3} {
		t.Errorf("unexpected extinction: %v", cfg.Water.Extinction)
	}
	if cfg.Water.NormalMapPath != "WaterNormalHeight.png" {
		t.Errorf("unexpected normal map path: %s", cfg.Water.NormalMapPath)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "water.log" {
		t.Errorf("expected log file 'water.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "novsync flag",
			setup: func() { *flagNoVSync = true },
			verify: func(cfg *Config) {
				if cfg.Graphics.VSync {
					t.Error("expected vsync to be false with novsync flag")
				}
			},
			teardown: func() { *flagNoVSync = false },
		},
		{
			name:  "wave scale flag",
			setup: func() { *flagWaveScale = 0.9 },
			verify: func(cfg *Config) {
				if cfg.Water.WaveScale != 0.9 {
					t.Errorf("expected wave scale 0.9, got %f", cfg.Water.WaveScale)
				}
			},
			teardown: func() { *flagWaveScale = -1 },
		},
		{
			name:  "negative wave scale flag keeps configured value",
			setup: func() { *flagWaveScale = -1 },
			verify: func(cfg *Config) {
				if cfg.Water.WaveScale != Default().Water.WaveScale {
					t.Errorf("expected default wave scale, got %f", cfg.Water.WaveScale)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Water.PlaneLevel = 12.5
	cfg.Water.Extinction = [3]float32{10, 50, 250}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Water.PlaneLevel != 12.5 {
		t.Errorf("expected plane level 12.5, got %f", loaded.Water.PlaneLevel)
	}
	if loaded.Water.Extinction != [3]float32{10, 50, 250} {
		t.Errorf("unexpected extinction after round trip: %v", loaded.Water.Extinction)
	}
}
