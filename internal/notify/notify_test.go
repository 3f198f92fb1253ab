package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronounce/internal/i18n"
)

type sent struct {
	title, message string
}

func newRecorded(enabled bool) (*Notifier, *[]sent) {
	var out []sent
	n := New(enabled)
	n.send = func(title, message, _ string) error {
		out = append(out, sent{title, message})
		return nil
	}
	return n, &out
}

func TestToast(t *testing.T) {
	n, out := newRecorded(true)

	n.Toast("Error playing audio", "Sorry, but it seems something is wrong.")

	require.Len(t, *out, 1)
	assert.Equal(t, "Pronounce: Error playing audio", (*out)[0].title)
	assert.Equal(t, "Sorry, but it seems something is wrong.", (*out)[0].message)
}

func TestDisabledSendsNothing(t *testing.T) {
	n, out := newRecorded(false)

	n.Toast("x", "y")
	n.Recording()
	assert.Empty(t, *out)

	n.SetEnabled(true)
	n.Recording()
	assert.Len(t, *out, 1)
}

func TestErrorTruncates(t *testing.T) {
	i18n.SetLanguage(i18n.EN)
	n, out := newRecorded(true)

	n.Error(strings.Repeat("a", 150))

	require.Len(t, *out, 1)
	assert.Len(t, (*out)[0].message, 103)
	assert.Equal(t, "Pronounce: Error", (*out)[0].title)
}

func TestRecorded(t *testing.T) {
	i18n.SetLanguage(i18n.EN)
	n, out := newRecorded(true)

	n.Recorded(3)

	require.Len(t, *out, 1)
	assert.Contains(t, (*out)[0].message, "3")
}
