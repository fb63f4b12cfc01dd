// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Water    WaterConfig    `yaml:"water"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// WaterConfig holds the water surface and shading parameters.
type WaterConfig struct {
	PlaneLevel      float32 `yaml:"plane_level"`      // Starting Y of the water plane
	WaveScale       float32 `yaml:"wave_scale"`       // Starting wave height multiplier
	RefractiveIndex float32 `yaml:"refractive_index"` // Drives the reflect/refract blend

	// Per-channel distances (R, G, B) at which light is fully absorbed
	// underwater.
	Extinction [3]float32 `yaml:"extinction"`

	// Depth at which refraction distortion reaches full strength.
	MaxDistortionDistance float32 `yaml:"max_distortion_distance"`

	SurfaceExtent float32 `yaml:"surface_extent"` // Half-width of the water square
	SurfaceCells  int     `yaml:"surface_cells"`  // Grid cells along each side

	// Optional normal/height map image; a procedural map is generated
	// when empty or missing.
	NormalMapPath string `yaml:"normal_map_path"`
}

// DebugConfig holds debug capture settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Water: WaterConfig{
			PlaneLevel:            10,
			WaveScale:             0.6,
			RefractiveIndex:       1.33,
			Extinction:            [3]float32{15, 75, 300},
			MaxDistortionDistance: 40,
			SurfaceExtent:         200,
			SurfaceCells:          400,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
