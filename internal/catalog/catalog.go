// Package catalog holds the practice sentences and their translations.
package catalog

import (
	"fmt"
	"sync"

	"pronounce/internal/asset"
)

// Language is a practice language.
type Language struct {
	Code string
	Name string
}

// PracticeItem is one sentence in one language.
type PracticeItem struct {
	ID            string
	Text          string
	Translation   string
	Language      string
	LanguageCode  string
	Reference     asset.Locator
	SentenceIndex int
	Phonetic      string
}

var (
	itemsOnce sync.Once
	items     []PracticeItem
)

// Languages returns the practice languages in display order.
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// Sentences returns the source sentences.
func Sentences() []string {
	return append([]string(nil), sentences...)
}

// LanguageName returns the display name of code.
func LanguageName(code string) (string, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

// PracticeItems returns every language x sentence pair, built once.
// A missing translation falls back to the source sentence and a missing
// transcription to "".
func PracticeItems() []PracticeItem {
	itemsOnce.Do(func() {
		items = make([]PracticeItem, 0, len(languages)*len(sentences))
		for _, lang := range languages {
			for i, sentence := range sentences {
				translation := translations[lang.Code][i]
				if translation == "" {
					translation = sentence
				}
				items = append(items, PracticeItem{
					ID:            fmt.Sprintf("%s_%d", lang.Code, i),
					Text:          sentence,
					Translation:   translation,
					Language:      lang.Name,
					LanguageCode:  lang.Code,
					Reference:     asset.Reference(lang.Code, i),
					SentenceIndex: i,
					Phonetic:      phonetics[lang.Code][i],
				})
			}
		}
	})
	return items
}

// Find returns the item for a language code and sentence index.
func Find(code string, index int) (PracticeItem, bool) {
	for _, it := range PracticeItems() {
		if it.LanguageCode == code && it.SentenceIndex == index {
			return it, true
		}
	}
	return PracticeItem{}, false
}

// Default returns the first item, English sentence 0.
func Default() PracticeItem {
	return PracticeItems()[0]
}

// SentenceLabel shortens a sentence for menus to 30 characters.
func SentenceLabel(s string) string {
	r := []rune(s)
	if len(r) <= 30 {
		return s
	}
	return string(r[:30]) + "..."
}
