// Package i18n provides the two UI locales (English, Korean) and locale
// selection via BCP 47 tag matching.
package i18n

import "golang.org/x/text/language"

// Key identifies a translatable UI string.
type Key string

// UI string keys.
const (
	KeyTitle            Key = "title"
	KeySearchPrompt     Key = "search_prompt"
	KeyFilters          Key = "filters"
	KeyArchitectureOnly Key = "architecture_only"
	KeyShuffle          Key = "shuffle"
	KeyRestoreLayout    Key = "restore_layout"
	KeyLanguage         Key = "language"
	KeyMusic            Key = "music"
	KeyOpenDataset      Key = "open_dataset"
	KeyVisibleCount     Key = "visible_count"
	KeyTotalCount       Key = "total_count"
	KeyClose            Key = "close"
	KeyNoDescription    Key = "no_description"
	KeyTypeExterior     Key = "type_exterior"
	KeyTypeInterior     Key = "type_interior"
	KeyTypeAerial       Key = "type_aerial"
	KeyTypeNature       Key = "type_nature"
	KeyTypeOther        Key = "type_other"
)

var english = map[Key]string{
	KeyTitle:            "Universe Gallery",
	KeySearchPrompt:     "Search images...",
	KeyFilters:          "Filters",
	KeyArchitectureOnly: "Architecture only",
	KeyShuffle:          "Shuffle layout",
	KeyRestoreLayout:    "Restore layout",
	KeyLanguage:         "한국어",
	KeyMusic:            "Ambient music",
	KeyOpenDataset:      "Open dataset...",
	KeyVisibleCount:     "Visible",
	KeyTotalCount:       "Total",
	KeyClose:            "Close",
	KeyNoDescription:    "No description",
	KeyTypeExterior:     "Exterior",
	KeyTypeInterior:     "Interior",
	KeyTypeAerial:       "Aerial",
	KeyTypeNature:       "Nature",
	KeyTypeOther:        "Other",
}

var korean = map[Key]string{
	KeyTitle:            "유니버스 갤러리",
	KeySearchPrompt:     "이미지 검색...",
	KeyFilters:          "필터",
	KeyArchitectureOnly: "건축물만 보기",
	KeyShuffle:          "배치 섞기",
	KeyRestoreLayout:    "배치 복원",
	KeyLanguage:         "English",
	KeyMusic:            "배경 음악",
	KeyOpenDataset:      "데이터셋 열기...",
	KeyVisibleCount:     "표시",
	KeyTotalCount:       "전체",
	KeyClose:            "닫기",
	KeyNoDescription:    "설명 없음",
	KeyTypeExterior:     "외관",
	KeyTypeInterior:     "인테리어",
	KeyTypeAerial:       "항공뷰",
	KeyTypeNature:       "자연",
	KeyTypeOther:        "기타",
}

// supported holds the locales the UI ships, English first as fallback.
var supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(supported)

// Locale is a resolved string table.
type Locale struct {
	tag     language.Tag
	strings map[Key]string
}

// Match resolves a language name ("en", "ko", "ko-KR", ...) to the closest
// supported locale. Unknown languages fall back to English.
func Match(lang string) Locale {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	if base.String() == "ko" {
		return Locale{tag: language.Korean, strings: korean}
	}
	return Locale{tag: language.English, strings: english}
}

// Tag returns the locale's language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// T returns the translated string for key, falling back to English and then
// to the raw key so a missing entry is visible instead of blank.
func (l Locale) T(key Key) string {
	if s, ok := l.strings[key]; ok {
		return s
	}
	if s, ok := english[key]; ok {
		return s
	}
	return string(key)
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l.tag == language.Korean {
		return Locale{tag: language.English, strings: english}
	}
	return Locale{tag: language.Korean, strings: korean}
}
