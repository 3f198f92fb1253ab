package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupExact(t *testing.T) {
	r := Lookup("ʃ", "fr")

	assert.Equal(t, "ʃ", r.Symbol)
	assert.NotEmpty(t, r.Explanation)
	assert.NotEmpty(t, r.Examples)
}

func TestLookupLanguageFallback(t *testing.T) {
	a := Lookup("a", "es")
	assert.Equal(t, "Open front unrounded vowel", a.Explanation)
	assert.Equal(t, []string{"casa", "hablar"}, a.Examples)

	// no Mandarin examples for "a", English is used
	assert.Equal(t, []string{"father", "car"}, Lookup("a", "zh").Examples)

	// "ā" has only Hindi examples and no English ones
	assert.Equal(t, []string{}, Lookup("ā", "fr").Examples)
}

func TestLookupCompound(t *testing.T) {
	// "ː" only appears inside "uː"
	r := Lookup("ː", "en")
	assert.Equal(t, Lookup("uː", "en").Explanation, r.Explanation)
}

func TestLookupUnknown(t *testing.T) {
	r := Lookup("ʘ", "en")

	assert.Equal(t, "Phonetic symbol: ʘ", r.Explanation)
	require.NotNil(t, r.Examples)
	assert.Empty(t, r.Examples)
}

func TestSymbols(t *testing.T) {
	tokens := Symbols("bɔ̃ ʒuʁ")

	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"b", "ɔ̃", " ", "ʒ", "u", "ʁ"}, texts)
	assert.False(t, tokens[2].Symbol)
	assert.True(t, tokens[1].Symbol)

	assert.Equal(t, "Nasalized open-mid back rounded vowel", Lookup(tokens[1].Text, "fr").Explanation)
}

func TestSymbolsEmpty(t *testing.T) {
	assert.Empty(t, Symbols(""))
}
