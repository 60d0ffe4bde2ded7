// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Data     DataConfig     `yaml:"data"`
	View     ViewConfig     `yaml:"view"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// DataConfig holds dataset artifact locations. Dataset and Stats accept
// either a local path or an http(s) URL.
type DataConfig struct {
	Dataset    string `yaml:"dataset"`
	Stats      string `yaml:"stats"`
	AssetsRoot string `yaml:"assets_root"`
}

// ViewConfig holds universe view tuning.
type ViewConfig struct {
	Language       string  `yaml:"language"`
	PointSize      float32 `yaml:"point_size"`
	SelectedSize   float32 `yaml:"selected_size"`
	BackgroundSize float32 `yaml:"background_size"`
	AnimationStep  float32 `yaml:"animation_step"` // progress per frame, (0,1]
	ShuffleRange   float32 `yaml:"shuffle_range"`  // positions sampled from ±range
}

// AudioConfig holds ambient music settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	BGMPath string  `yaml:"bgm_path"`
	Volume  float64 `yaml:"volume"`
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
			Width:  1280,
			Height: 800,
			VSync:  true,
		},
		Data: DataConfig{
			Dataset:    "data/coordinates.json",
			Stats:      "data/statistics.json",
			AssetsRoot: "public",
		},
		View: ViewConfig{
			Language:       "en",
			PointSize:      6,
			SelectedSize:   12,
			BackgroundSize: 2,
			AnimationStep:  0.02,
			ShuffleRange:   60,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
