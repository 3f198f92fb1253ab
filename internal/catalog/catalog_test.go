package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronounce/internal/asset"
)

func TestLanguagesOrder(t *testing.T) {
	var codes []string
	for _, l := range Languages() {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"en", "zh", "es", "hi", "fr"}, codes)

	name, ok := LanguageName("hi")
	assert.True(t, ok)
	assert.Equal(t, "Hindi", name)

	_, ok = LanguageName("de")
	assert.False(t, ok)
}

func TestPracticeItems(t *testing.T) {
	items := PracticeItems()
	require.Len(t, items, 50)

	first := items[0]
	assert.Equal(t, "en_0", first.ID)
	assert.Equal(t, "Hello, how are you today?", first.Translation)
	assert.Equal(t, asset.Locator("/audio/speech_en_0.mp3"), first.Reference)
	assert.Equal(t, first, Default())

	// second language block starts after ten sentences
	assert.Equal(t, "zh_0", items[10].ID)
	assert.Equal(t, "Mandarin Chinese", items[10].Language)
}

func TestFind(t *testing.T) {
	it, ok := Find("es", 2)
	require.True(t, ok)
	assert.Equal(t, "Learning new languages is fun!", it.Text)
	assert.Equal(t, "¡Aprender nuevos idiomas es divertido!", it.Translation)
	assert.Equal(t, "apɾenˈdeɾ ˈnweβos iˈðjomas es diβeɾˈtiðo!", it.Phonetic)
	assert.Equal(t, asset.Locator("/audio/speech_es_2.mp3"), it.Reference)

	_, ok = Find("es", 10)
	assert.False(t, ok)
	_, ok = Find("xx", 0)
	assert.False(t, ok)
}

func TestSentencesIsACopy(t *testing.T) {
	s := Sentences()
	s[0] = "changed"
	assert.Equal(t, "Hello, how are you today?", Sentences()[0])
}

func TestSentenceLabel(t *testing.T) {
	assert.Equal(t, "Hard work leads to success.", SentenceLabel("Hard work leads to success."))
	assert.Equal(t, "The weather is beautiful outsi...", SentenceLabel("The weather is beautiful outside."))
}
