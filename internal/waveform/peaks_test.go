package waveform

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketCount(t *testing.T) {
	tests := []struct {
		width, bw, bg int
		want          int
	}{
		{1000, 3, 1, 250},
		{1001, 3, 1, 250},
		{3, 3, 1, 0},
		{0, 3, 1, 0},
		{-5, 3, 1, 0},
		{100, 0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketCount(tt.width, tt.bw, tt.bg), "%+v", tt)
	}
}

func TestPeaks(t *testing.T) {
	samples := []float64{0.1, -0.9, 0.2, 0.3, -0.4, 0.05, 1.5}

	env := Peaks(samples, 3)

	// 7 samples over 3 buckets: 3 per bucket
	require.Len(t, env, 3)
	assert.Equal(t, Envelope{0.9, 0.4, 1}, env)
}

func TestPeaksPadsMissingBuckets(t *testing.T) {
	env := Peaks([]float64{0.5, -0.25}, 5)

	assert.Equal(t, Envelope{0.5, 0.25, 0, 0, 0}, env)
}

func TestPeaksLengthMatchesBucketCount(t *testing.T) {
	samples := make([]float64, 44100)
	for i := range samples {
		samples[i] = float64(i%200)/100 - 1
	}
	buckets := BucketCount(1000, 3, 1)

	env := Peaks(samples, buckets)

	require.Len(t, env, 250)
	for _, v := range env {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestPeaksEdgeCases(t *testing.T) {
	assert.Nil(t, Peaks([]float64{1}, 0))
	assert.Equal(t, Envelope{0, 0}, Peaks(nil, 2))
}

func TestProgress(t *testing.T) {
	assert.Zero(t, Progress(3, 0))
	assert.Equal(t, 0.5, Progress(1, 2))
	assert.Equal(t, 1.0, Progress(5, 2))
	assert.Zero(t, Progress(-1, 2))
}

func TestLayout(t *testing.T) {
	st := DefaultStyle()
	env := Envelope{1, 0.5, 0, 0.25}

	f := Layout(env, 0.5, 16, 64, st)

	require.Len(t, f.Bars, 4)
	assert.Equal(t, image.Rect(0, 0, 3, 64), f.Bars[0].Rect)
	assert.Equal(t, image.Rect(4, 16, 7, 48), f.Bars[1].Rect)
	// silent bucket still gets a 1px bar
	assert.Equal(t, image.Rect(8, 31, 11, 32), f.Bars[2].Rect)
	assert.Equal(t, image.Rect(12, 24, 15, 40), f.Bars[3].Rect)

	assert.True(t, f.Bars[0].Elapsed)
	assert.True(t, f.Bars[1].Elapsed)
	assert.True(t, f.Bars[2].Elapsed)
	assert.False(t, f.Bars[3].Elapsed)

	require.True(t, f.HasCursor)
	assert.Equal(t, image.Rect(8, 0, 10, 64), f.Cursor)
}

func TestLayoutWithoutProgress(t *testing.T) {
	f := Layout(Envelope{0.5, 0.5}, 0, 8, 10, DefaultStyle())

	assert.False(t, f.HasCursor)
	// x=0 <= 0 counts as elapsed
	assert.True(t, f.Bars[0].Elapsed)
	assert.False(t, f.Bars[1].Elapsed)
}

func TestLayoutLimitsBarsToSurface(t *testing.T) {
	env := make(Envelope, 100)
	f := Layout(env, 0, 40, 10, DefaultStyle())
	assert.Len(t, f.Bars, 10)
}

func TestLayoutCursorTracksProgress(t *testing.T) {
	for _, p := range []float64{0.1, 0.25, 0.9, 1} {
		f := Layout(Envelope{1}, p, 1000, 64, DefaultStyle())
		assert.Equal(t, int(1000*p), f.Cursor.Min.X)
		assert.Equal(t, 2, f.Cursor.Dx())
	}
}

func TestFramePaint(t *testing.T) {
	st := DefaultStyle()
	st.Background = color.NRGBA{A: 255}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 10))

	Layout(Envelope{1, 1}, 0.5, 8, 10, st).Paint(img, st)

	assert.Equal(t, st.Elapsed, img.NRGBAAt(1, 5))
	assert.Equal(t, st.Cursor, img.NRGBAAt(4, 0))
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(3, 5))
}

func TestFormatTime(t *testing.T) {
	tests := map[float64]string{
		0:      "0:00",
		5.99:   "0:05",
		59.9:   "0:59",
		60:     "1:00",
		125.4:  "2:05",
		-3:     "0:00",
		3600.2: "60:00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatTime(in), "FormatTime(%v)", in)
	}
}
