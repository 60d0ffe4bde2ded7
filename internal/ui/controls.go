package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"

	"github.com/archiviz/universe/internal/dataset"
	"github.com/archiviz/universe/internal/i18n"
)

// categoryKeys maps categories to their translated labels.
var categoryKeys = map[dataset.Category]i18n.Key{
	dataset.CategoryExterior: i18n.KeyTypeExterior,
	dataset.CategoryInterior: i18n.KeyTypeInterior,
	dataset.CategoryAerial:   i18n.KeyTypeAerial,
	dataset.CategoryNature:   i18n.KeyTypeNature,
	dataset.CategoryOther:    i18n.KeyTypeOther,
}

func (s *State) renderControls() {
	// Search input
	imgui.SetNextItemWidth(-1)
	if imgui.InputTextWithHint("##search", s.Locale.T(i18n.KeySearchPrompt), &s.SearchText, 0, nil) {
		s.View.SetQuery(s.SearchText)
	}

	imgui.Separator()
	imgui.Text(s.Locale.T(i18n.KeyFilters))

	filter := s.View.Filter()
	for _, cat := range dataset.Categories {
		label := s.Locale.T(categoryKeys[cat])
		if s.Stats != nil {
			label = fmt.Sprintf("%s (%d)", label, s.Stats.CategoryCount(cat))
		}
		active := filter.Types[cat]
		if imgui.Checkbox(label+"##cat_"+string(cat), &active) {
			s.View.ToggleCategory(cat)
		}
	}

	archOnly := filter.ArchitectureOnly
	if imgui.Checkbox(s.Locale.T(i18n.KeyArchitectureOnly)+"##archonly", &archOnly) {
		s.View.SetArchitectureOnly(archOnly)
	}

	imgui.Separator()

	// Shuffle button flips label once the layout is scattered
	shuffleLabel := s.Locale.T(i18n.KeyShuffle)
	if s.View.Shuffled() {
		shuffleLabel = s.Locale.T(i18n.KeyRestoreLayout)
	}
	if imgui.ButtonV(shuffleLabel+"##shuffle", imgui.NewVec2(-1, 0)) {
		s.View.ToggleShuffle()
	}

	if imgui.ButtonV(s.Locale.T(i18n.KeyLanguage)+"##lang", imgui.NewVec2(-1, 0)) {
		s.Locale = s.Locale.Toggle()
	}

	imgui.Separator()

	if imgui.Checkbox(s.Locale.T(i18n.KeyMusic)+"##music", &s.MusicOn) {
		s.toggleMusic()
	}

	if imgui.ButtonV(s.Locale.T(i18n.KeyOpenDataset)+"##opendataset", imgui.NewVec2(-1, 0)) {
		s.openDatasetDialog()
	}
}

func (s *State) toggleMusic() {
	if s.Audio == nil {
		return
	}
	if !s.MusicOn {
		s.Audio.Pause()
		return
	}
	if s.Audio.Path() != "" {
		s.Audio.Resume()
		return
	}
	if s.BGMPath == "" {
		s.MusicOn = false
		return
	}
	if err := s.Audio.PlayFile(s.BGMPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting music: %v\n", err)
		s.MusicOn = false
	}
}

// openDatasetDialog shows a native file dialog for a coordinates file.
// Runs in a goroutine; SDL window operations must stay on the main
// thread, so only PendingDatasetPath is set here and Render consumes it.
func (s *State) openDatasetDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Coordinate datasets", "json").
			Filter("All Files", "*").
			Title("Open Dataset").
			Load()

		if err != nil {
			if err != dialog.ErrCancelled {
				fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
			}
			return
		}

		s.PendingDatasetPath = filename
	}()
}
