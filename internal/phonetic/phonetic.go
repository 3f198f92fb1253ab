// Package phonetic explains IPA symbols shown in transcriptions.
package phonetic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Info describes one phonetic symbol.
type Info struct {
	Explanation string
	// Examples maps language code to example words.
	Examples map[string][]string
}

type entry struct {
	symbol string
	info   Info
}

// Result is what Lookup resolved for a symbol in one language.
type Result struct {
	Symbol      string
	Explanation string
	Examples    []string
}

// Lookup resolves symbol exactly, then through the first multi-rune
// entry containing it, then falls back to a generic description.
// Examples are taken for languageCode, then English, then none.
func Lookup(symbol, languageCode string) Result {
	info, ok := find(symbol)
	if !ok {
		return Result{Symbol: symbol, Explanation: "Phonetic symbol: " + symbol, Examples: []string{}}
	}

	examples := info.Examples[languageCode]
	if examples == nil {
		examples = info.Examples["en"]
	}
	if examples == nil {
		examples = []string{}
	}
	return Result{Symbol: symbol, Explanation: info.Explanation, Examples: examples}
}

func find(symbol string) (Info, bool) {
	for _, e := range dictionary {
		if e.symbol == symbol {
			return e.info, true
		}
	}
	if symbol == "" {
		return Info{}, false
	}
	for _, e := range dictionary {
		if utf8.RuneCountInString(e.symbol) > 1 && strings.Contains(e.symbol, symbol) {
			return e.info, true
		}
	}
	return Info{}, false
}

// Token is one piece of a transcription.
type Token struct {
	Text string
	// Symbol is false for whitespace, which is shown as is.
	Symbol bool
}

// Symbols splits a transcription into single-character tokens. Combining
// marks stay with the character they modify.
func Symbols(transcription string) []Token {
	var tokens []Token
	for _, r := range transcription {
		if unicode.Is(unicode.Mn, r) && len(tokens) > 0 && tokens[len(tokens)-1].Symbol {
			tokens[len(tokens)-1].Text += string(r)
			continue
		}
		tokens = append(tokens, Token{Text: string(r), Symbol: !unicode.IsSpace(r)})
	}
	return tokens
}
