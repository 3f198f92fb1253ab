package waveform

import (
	"image"
	"image/color"
	"math"
	"time"

	"gioui.org/font"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"pronounce/internal/i18n"
)

// Widget draws a Player's envelope and routes clicks on it to SeekAt.
type Widget struct {
	player *Player
	since  time.Time
}

// NewWidget creates a widget for p.
func NewWidget(p *Player) *Widget {
	return &Widget{player: p, since: time.Now()}
}

// Player returns the bound player.
func (w *Widget) Player() *Player {
	return w.player
}

// Layout draws the surface, its overlays and the time labels below it.
func (w *Widget) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	st := w.player.Style()
	width := gtx.Constraints.Max.X
	height := gtx.Dp(unit.Dp(st.Height))
	// bar sizes are in dp, so is the width the bucket count is derived from
	if gtx.Metric.PxPerDp > 0 {
		w.player.SetSurfaceWidth(int(float32(width) / gtx.Metric.PxPerDp))
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{Target: w, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Buttons.Contain(pointer.ButtonPrimary) {
			w.player.SeekAt(float64(e.Position.X), float64(width))
		}
	}

	snap := w.player.Snapshot()

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := image.Pt(width, height)
			gtx.Constraints = layout.Exact(size)

			drawSurface(gtx, snap, st)

			switch snap.State {
			case StateLoading:
				drawOverlay(gtx, th, i18n.T("waveform_loading"), th.Palette.Fg, gtx.Now.Sub(w.since), st.Elapsed)
			case StateError:
				drawOverlay(gtx, th, i18n.T("waveform_error"), st.Cursor, 0, color.NRGBA{})
			}

			area := clip.Rect{Max: size}.Push(gtx.Ops)
			event.Op(gtx.Ops, w)
			pointer.CursorPointer.Add(gtx.Ops)
			area.Pop()

			return layout.Dimensions{Size: size}
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if snap.Duration <= 0 {
				return layout.Dimensions{}
			}
			return layout.Inset{Top: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(timeLabel(th, FormatTime(snap.Current))),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{Size: image.Pt(gtx.Constraints.Min.X, 0)}
					}),
					layout.Rigid(timeLabel(th, FormatTime(snap.Duration))),
				)
			})
		}),
	)
}

func timeLabel(th *material.Theme, text string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		lbl := material.Caption(th, text)
		lbl.Color = mulAlpha(th.Palette.Fg, 160)
		return lbl.Layout(gtx)
	}
}

// drawSurface paints the background, bars and progress cursor.
func drawSurface(gtx layout.Context, snap Snapshot, st Style) {
	size := gtx.Constraints.Max
	rr := gtx.Dp(unit.Dp(6))
	bg := clip.RRect{Rect: image.Rectangle{Max: size}, NE: rr, NW: rr, SE: rr, SW: rr}
	paint.FillShape(gtx.Ops, st.Background, bg.Op(gtx.Ops))

	px := st
	px.BarWidth = gtx.Dp(unit.Dp(st.BarWidth))
	px.BarGap = gtx.Dp(unit.Dp(st.BarGap))

	frame := Layout(snap.Envelope, snap.Progress(), size.X, size.Y, px)
	for _, b := range frame.Bars {
		col := st.Muted
		if b.Elapsed {
			col = st.Elapsed
		}
		paint.FillShape(gtx.Ops, col, clip.Rect(b.Rect).Op())
	}
	if frame.HasCursor {
		paint.FillShape(gtx.Ops, st.Cursor, clip.Rect(frame.Cursor).Op())
	}
}

// drawOverlay dims the surface and centres a message on it, with a
// spinner when spin is non-zero.
func drawOverlay(gtx layout.Context, th *material.Theme, text string, fg color.NRGBA, spin time.Duration, accent color.NRGBA) {
	paint.FillShape(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 34, A: 160}, clip.Rect{Max: gtx.Constraints.Max}.Op())

	gtx.Constraints.Min = image.Point{}
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if spin == 0 {
					return layout.Dimensions{}
				}
				return drawSpinner(gtx, spin, accent)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(th, text)
				lbl.Color = fg
				lbl.Font.Weight = font.Medium
				return lbl.Layout(gtx)
			}),
		)
	})
}

// drawSpinner draws a ring of fading dots rotating with elapsed time.
func drawSpinner(gtx layout.Context, elapsed time.Duration, col color.NRGBA) layout.Dimensions {
	size := gtx.Dp(unit.Dp(24))
	thickness := gtx.Dp(unit.Dp(3))
	rotation := float64(elapsed.Milliseconds()) / 800.0 * 2 * math.Pi

	center := image.Pt(size/2, size/2)
	radius := size/2 - thickness

	const dots = 12
	for i := 0; i < dots; i++ {
		angle := rotation + float64(i)*2*math.Pi/dots
		x := center.X + int(float64(radius)*math.Cos(angle))
		y := center.Y + int(float64(radius)*math.Sin(angle))

		alpha := max(255-i*20, 40)
		r := thickness / 2
		dot := clip.Ellipse{Min: image.Pt(x-r, y-r), Max: image.Pt(x+r, y+r)}
		paint.FillShape(gtx.Ops, mulAlpha(col, uint8(alpha)), dot.Op(gtx.Ops))
	}
	return layout.Dimensions{Size: image.Pt(size, size)}
}

func mulAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(a) / 255)
	return c
}
