package main

import (
	"bytes"
	"context"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pronounce/internal/catalog"
	"pronounce/internal/media"
)

func tone(seconds float64) []byte {
	const rate = 8000
	samples := make([]float32, int(seconds*rate))
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}
	return media.EncodeWAV(media.PCM16(samples), rate, 1)
}

func TestRenderWritesPNG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.wav")
	require.NoError(t, os.WriteFile(input, tone(1.5), 0o644))

	var out bytes.Buffer
	err := run(context.Background(), []string{"--width", "200", "--height", "40", input}, &out)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "hello.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	assert.Contains(t, out.String(), "0:01, 50 bars")
}

func TestRenderRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "noise.bin")
	require.NoError(t, os.WriteFile(input, []byte("not audio at all"), 0o644))

	err := run(context.Background(), []string{input}, &bytes.Buffer{})
	require.Error(t, err)

	err = run(context.Background(), nil, &bytes.Buffer{})
	require.Error(t, err)
}

func writeReferences(t *testing.T, root string, skip string) {
	t.Helper()
	data := tone(0.2)
	for _, item := range catalog.PracticeItems() {
		if item.ID == skip {
			continue
		}
		path := filepath.Join(root, filepath.FromSlash(string(item.Reference)))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
}

func TestCheckAllReferences(t *testing.T) {
	root := t.TempDir()
	writeReferences(t, root, "")

	var out bytes.Buffer
	err := run(context.Background(), []string{"--check", "--root", root, "-j", "3"}, &out)
	require.NoError(t, err)

	n := len(catalog.PracticeItems())
	assert.Contains(t, out.String(), "references ok")
	assert.Contains(t, out.String(), strconv.Itoa(n)+"/"+strconv.Itoa(n))
}

func TestCheckReportsMissing(t *testing.T) {
	root := t.TempDir()
	missing := catalog.PracticeItems()[3].ID
	writeReferences(t, root, missing)

	var out bytes.Buffer
	err := run(context.Background(), []string{"--check", "--root", root}, &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "FAIL "+missing)
}
