package waveform

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Style holds the drawing parameters of a waveform surface.
type Style struct {
	Height   int
	BarWidth int
	BarGap   int

	Background color.NRGBA
	Elapsed    color.NRGBA
	Muted      color.NRGBA
	Cursor     color.NRGBA
}

// DefaultStyle returns the standard look: 64px tall, 3px bars, 1px gaps.
func DefaultStyle() Style {
	return Style{
		Height:     64,
		BarWidth:   3,
		BarGap:     1,
		Background: color.NRGBA{R: 45, G: 45, B: 50, A: 255},
		Elapsed:    color.NRGBA{R: 88, G: 166, B: 255, A: 255},
		Muted:      color.NRGBA{R: 140, G: 140, B: 150, A: 128},
		Cursor:     color.NRGBA{R: 255, G: 100, B: 100, A: 255},
	}
}

// Bar is one rendered bucket.
type Bar struct {
	Rect    image.Rectangle
	Elapsed bool
}

// Frame is the geometry of one waveform draw.
type Frame struct {
	Width, Height int
	Bars          []Bar
	Cursor        image.Rectangle
	HasCursor     bool
}

// Layout computes bar and cursor geometry for env at the given progress
// fraction on a width x height surface.
func Layout(env Envelope, progress float64, width, height int, st Style) Frame {
	f := Frame{Width: width, Height: height}
	if math.IsNaN(progress) || progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	progressX := float64(width) * progress

	count := min(BucketCount(width, st.BarWidth, st.BarGap), len(env))
	f.Bars = make([]Bar, 0, count)
	for i := 0; i < count; i++ {
		x := i * (st.BarWidth + st.BarGap)
		h := int(math.Round(env[i] * float64(height)))
		if h < 1 {
			h = 1
		}
		y := (height - h) / 2
		f.Bars = append(f.Bars, Bar{
			Rect:    image.Rect(x, y, x+st.BarWidth, y+h),
			Elapsed: float64(x) <= progressX,
		})
	}

	if progress > 0 {
		cx := int(progressX)
		f.Cursor = image.Rect(cx, 0, cx+2, height)
		f.HasCursor = true
	}
	return f
}

// Paint clears dst and rasterizes the frame onto it.
func (f Frame) Paint(dst draw.Image, st Style) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)
	for _, b := range f.Bars {
		col := st.Muted
		if b.Elapsed {
			col = st.Elapsed
		}
		draw.Draw(dst, b.Rect, image.NewUniform(col), image.Point{}, draw.Over)
	}
	if f.HasCursor {
		draw.Draw(dst, f.Cursor, image.NewUniform(st.Cursor), image.Point{}, draw.Over)
	}
}

// FormatTime renders seconds as M:SS, rounding down.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
