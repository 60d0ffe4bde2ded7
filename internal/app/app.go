// Package app wires the dataset, the universe view, the renderer and
// the UI into a running desktop application.
package app

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/archiviz/universe/internal/config"
	"github.com/archiviz/universe/internal/dataset"
	"github.com/archiviz/universe/internal/engine/audio"
	"github.com/archiviz/universe/internal/engine/camera"
	"github.com/archiviz/universe/internal/engine/pointcloud"
	"github.com/archiviz/universe/internal/engine/texture"
	"github.com/archiviz/universe/internal/i18n"
	"github.com/archiviz/universe/internal/logger"
	"github.com/archiviz/universe/internal/ui"
	"github.com/archiviz/universe/internal/universe"
)

// koreanGlyphRanges defines the Unicode ranges for Korean text rendering.
// Pairs of [start, end] values terminated by 0.
var koreanGlyphRanges = []imgui.Wchar{
	0x0020, 0x00FF, // Basic Latin + Latin Supplement
	0x3000, 0x30FF, // CJK Symbols and Punctuation, Hiragana, Katakana
	0x3130, 0x318F, // Hangul Compatibility Jamo
	0xAC00, 0xD7AF, // Hangul Syllables
	0, // Terminator
}

// App owns the window, the render loop and everything drawn in it.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	view     *universe.View
	cam      *camera.Orbit
	renderer *pointcloud.Renderer
	textures *texture.Cache
	bgm      *audio.Manager

	state *ui.State
}

// New builds the application from configuration: loads the dataset,
// creates the window and composes the UI state.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	records := a.loadRecords(cfg.Data.Dataset)
	store := dataset.NewStore(records)

	a.view = universe.NewView(store, universe.Options{
		Sizes: universe.Sizes{
			Background: cfg.View.BackgroundSize,
			Normal:     cfg.View.PointSize,
			Selected:   cfg.View.SelectedSize,
		},
		AnimationStep: cfg.View.AnimationStep,
		ShuffleExtent: cfg.View.ShuffleRange,
	})

	a.cam = camera.New()
	a.textures = texture.NewCache()

	stats, err := dataset.LoadStats(cfg.Data.Stats)
	if err != nil {
		logger.Warn("statistics unavailable", zap.String("source", cfg.Data.Stats), zap.Error(err))
	}

	a.bgm = audio.New()
	if err := a.bgm.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
		a.bgm = nil
	} else {
		a.bgm.SetVolume(cfg.Audio.Volume)
	}

	a.state = &ui.State{
		View:          a.view,
		Camera:        a.cam,
		Textures:      a.textures,
		Audio:         a.bgm,
		Locale:        i18n.Match(cfg.View.Language),
		Stats:         stats,
		AssetsRoot:    cfg.Data.AssetsRoot,
		BGMPath:       cfg.Audio.BGMPath,
		OnOpenDataset: a.openDataset,
	}

	a.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	a.backend.SetAfterCreateContextHook(func() {
		loadKoreanFont()
	})

	a.backend.SetBgColor(imgui.NewVec4(0.03, 0.04, 0.08, 1.0))
	a.backend.CreateWindow(a.state.Locale.T(i18n.KeyTitle), cfg.Graphics.Width, cfg.Graphics.Height)

	if cfg.Graphics.VSync {
		err = a.backend.SetSwapInterval(1)
	} else {
		err = a.backend.SetSwapInterval(0)
	}
	if err != nil {
		logger.Warn("swap interval not applied", zap.Error(err))
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl init: %w", err)
	}

	if cfg.Audio.Enabled && a.bgm != nil && cfg.Audio.BGMPath != "" {
		if err := a.bgm.PlayFile(cfg.Audio.BGMPath); err != nil {
			logger.Warn("bgm start failed", zap.String("path", cfg.Audio.BGMPath), zap.Error(err))
		} else {
			a.state.MusicOn = true
		}
	}

	return a, nil
}

// loadRecords fetches and parses the coordinate dataset. HTTP sources
// are cache-busted inside the loader. A missing or broken dataset
// degrades to an empty universe rather than failing startup; the user
// can open a dataset from the UI.
func (a *App) loadRecords(source string) []dataset.Record {
	records, err := dataset.Load(source)
	if err != nil {
		logger.Warn("dataset unavailable, starting empty",
			zap.String("source", source), zap.Error(err))
		return nil
	}

	logger.Info("dataset loaded",
		zap.String("source", source), zap.Int("records", len(records)))
	return records
}

// openDataset replaces the current universe with a dataset chosen in
// the file dialog.
func (a *App) openDataset(path string) {
	records := a.loadRecords(path)
	a.view.Replace(records)
	a.textures.Clear()
	logger.Info("dataset replaced", zap.String("path", path))
}

// Run enters the main loop, blocking until the window closes.
func (a *App) Run() {
	a.backend.Run(a.render)
}

func (a *App) render() {
	// The renderer needs a current GL context, so it is created on the
	// first frame rather than in New
	if a.renderer == nil {
		r, err := pointcloud.New(int32(a.cfg.Graphics.Width), int32(a.cfg.Graphics.Height))
		if err != nil {
			logger.Error("renderer init failed", zap.Error(err))
			os.Exit(1)
		}
		a.renderer = r
		a.state.Renderer = r
	}

	a.state.Render()
}

// Close releases resources.
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Destroy()
		a.renderer = nil
	}
	if a.bgm != nil {
		a.bgm.Close()
	}
}

// loadKoreanFont loads a font with Korean glyph support. Called from
// SetAfterCreateContextHook after the imgui context exists.
func loadKoreanFont() {
	fonts := imgui.CurrentIO().Fonts()

	fontPaths := []string{
		"/Library/Fonts/Arial Unicode.ttf",                       // macOS (symlink)
		"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",   // macOS (actual)
		"C:\\Windows\\Fonts\\malgun.ttf",                         // Windows (Malgun Gothic)
		"C:\\Windows\\Fonts\\gulim.ttc",                          // Windows (Gulim)
		"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc", // Linux
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc", // Linux alt
	}

	var fontPath string
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			fontPath = path
			break
		}
	}

	if fontPath == "" {
		logger.Warn("no Korean-capable font found, using default font")
		return
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	if font := fonts.AddFontFromFileTTFV(fontPath, 16.0, fontCfg, &koreanGlyphRanges[0]); font == nil {
		logger.Warn("font load failed", zap.String("path", fontPath))
		return
	}

	logger.Debug("loaded font", zap.String("path", fontPath))
}
