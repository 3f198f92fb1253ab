package waveform

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"pronounce/internal/i18n"
)

// MeterColors holds the colors of the live recording panel.
type MeterColors struct {
	Panel  color.NRGBA
	Wave   color.NRGBA
	Record color.NRGBA
	Text   color.NRGBA
}

// DefaultMeterColors returns the standard recording panel colors.
func DefaultMeterColors() MeterColors {
	return MeterColors{
		Panel:  color.NRGBA{R: 45, G: 45, B: 50, A: 255},
		Wave:   color.NRGBA{R: 80, G: 200, B: 120, A: 255},
		Record: color.NRGBA{R: 255, G: 100, B: 100, A: 255},
		Text:   color.NRGBA{R: 240, G: 240, B: 245, A: 255},
	}
}

// Level computes the RMS loudness of the most recent 1024 samples,
// scaled so typical speech lands around the middle of [0, 1].
func Level(samples []float32) float32 {
	if len(samples) == 0 {
		return 0
	}
	subset := samples[max(0, len(samples)-1024):]

	var sum float64
	for _, s := range subset {
		sum += float64(s) * float64(s)
	}
	rms := float32(math.Sqrt(sum / float64(len(subset))))
	return min(rms*3, 1)
}

// LayoutMeter draws the live recording panel: a pulsing dot, the
// elapsed time badge, a level bar and the input oscilloscope.
func LayoutMeter(gtx layout.Context, th *material.Theme, samples []float32, elapsedSeconds int, colors MeterColors) layout.Dimensions {
	pulse := time.Duration(gtx.Now.UnixMilli()) * time.Millisecond

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return drawRecordingDot(gtx, pulse, colors.Record)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					lbl := material.Label(th, unit.Sp(14), i18n.T("recording"))
					lbl.Color = colors.Text
					lbl.Font.Weight = font.Medium
					return lbl.Layout(gtx)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Dimensions{Size: image.Pt(gtx.Constraints.Min.X, 0)}
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return drawTimerBadge(gtx, th, FormatTime(float64(elapsedSeconds)), colors)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.Y = gtx.Dp(unit.Dp(56))
			gtx.Constraints.Max.Y = gtx.Constraints.Min.Y
			return drawInputPanel(gtx, samples, colors)
		}),
	)
}

func drawRecordingDot(gtx layout.Context, t time.Duration, col color.NRGBA) layout.Dimensions {
	size := gtx.Dp(unit.Dp(10))

	pulse := float32(math.Sin(float64(t.Milliseconds())/200.0)*0.3 + 0.7)
	col.A = uint8(float32(col.A) * pulse)

	circle := clip.Ellipse{Max: image.Pt(size, size)}
	paint.FillShape(gtx.Ops, col, circle.Op(gtx.Ops))

	return layout.Dimensions{Size: image.Pt(size, size)}
}

func drawTimerBadge(gtx layout.Context, th *material.Theme, text string, colors MeterColors) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := layout.Inset{
		Top: unit.Dp(4), Bottom: unit.Dp(4),
		Left: unit.Dp(10), Right: unit.Dp(10),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Label(th, unit.Sp(13), text)
		lbl.Color = colors.Text
		lbl.Font.Weight = font.Bold
		return lbl.Layout(gtx)
	})
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(6))
	rect := clip.RRect{Rect: image.Rectangle{Max: dims.Size}, NE: rr, NW: rr, SE: rr, SW: rr}
	paint.FillShape(gtx.Ops, colors.Panel, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

func drawInputPanel(gtx layout.Context, samples []float32, colors MeterColors) layout.Dimensions {
	rr := gtx.Dp(unit.Dp(8))
	rect := clip.RRect{Rect: image.Rectangle{Max: gtx.Constraints.Max}, NE: rr, NW: rr, SE: rr, SW: rr}
	paint.FillShape(gtx.Ops, colors.Panel, rect.Op(gtx.Ops))

	return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(20))
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return drawLevelBar(gtx, Level(samples), colors)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return drawScope(gtx, samples, colors.Wave)
			}),
		)
	})
}

// levelColor is green for normal speech, yellow when loud, red near clipping.
func levelColor(level float32, normal color.NRGBA) color.NRGBA {
	switch {
	case level > 0.7:
		return color.NRGBA{R: 255, G: 80, B: 80, A: 255}
	case level > 0.4:
		return color.NRGBA{R: 255, G: 180, A: 255}
	default:
		return normal
	}
}

func drawLevelBar(gtx layout.Context, level float32, colors MeterColors) layout.Dimensions {
	width := gtx.Constraints.Max.X
	height := gtx.Constraints.Max.Y

	rr := gtx.Dp(unit.Dp(4))
	bg := clip.RRect{Rect: image.Rectangle{Max: image.Pt(width, height)}, NE: rr, NW: rr, SE: rr, SW: rr}
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 35, B: 40, A: 255}, bg.Op(gtx.Ops))

	if barHeight := int(level * float32(height)); barHeight > 0 {
		bar := clip.RRect{
			Rect: image.Rectangle{
				Min: image.Pt(2, height-barHeight),
				Max: image.Pt(width-2, height-2),
			},
			NE: rr - 1, NW: rr - 1, SE: rr - 1, SW: rr - 1,
		}
		paint.FillShape(gtx.Ops, levelColor(level, colors.Wave), bar.Op(gtx.Ops))
	}

	return layout.Dimensions{Size: image.Pt(width, height)}
}

// drawScope draws the newest samples that fit the width as a line.
func drawScope(gtx layout.Context, samples []float32, col color.NRGBA) layout.Dimensions {
	width := float32(gtx.Constraints.Max.X)
	height := float32(gtx.Constraints.Max.Y)
	size := image.Pt(int(width), int(height))
	centerY := height / 2

	centerLine := clip.Rect{Min: image.Pt(0, int(centerY)), Max: image.Pt(int(width), int(centerY)+1)}
	paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 60, B: 65, A: 255}, centerLine.Op())

	if len(samples) < 2 || width < 1 {
		return layout.Dimensions{Size: size}
	}
	if n := int(width); len(samples) > n {
		samples = samples[len(samples)-n:]
	}

	var path clip.Path
	path.Begin(gtx.Ops)
	step := width / float32(len(samples))
	for i, s := range samples {
		pt := f32.Pt(float32(i)*step, centerY-s*centerY*0.85)
		if i == 0 {
			path.MoveTo(pt)
		} else {
			path.LineTo(pt)
		}
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: 2}.Op())

	return layout.Dimensions{Size: size}
}
