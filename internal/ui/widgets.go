package ui

import (
	"image"
	"image/color"
	"strconv"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"pronounce/internal/catalog"
	"pronounce/internal/guide"
	"pronounce/internal/i18n"
	"pronounce/internal/waveform"
)

// Color palette - modern dark theme
var (
	colorBG         = color.NRGBA{R: 30, G: 30, B: 34, A: 255}
	colorPanel      = color.NRGBA{R: 45, G: 45, B: 50, A: 255}
	colorPanelLight = color.NRGBA{R: 55, G: 55, B: 62, A: 255}
	colorText       = color.NRGBA{R: 240, G: 240, B: 245, A: 255}
	colorTextDim    = color.NRGBA{R: 140, G: 140, B: 150, A: 255}
	colorAccent     = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
	colorRecord     = color.NRGBA{R: 255, G: 100, B: 100, A: 255}
	colorSuccess    = color.NRGBA{R: 80, G: 200, B: 120, A: 255}
	colorSelected   = color.NRGBA{R: 60, G: 100, B: 160, A: 255}
)

func (w *Window) draw(gtx layout.Context, th *material.Theme, view guide.View) layout.Dimensions {
	rect := clip.Rect{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, colorBG, rect.Op())

	sections := []layout.Widget{
		func(gtx layout.Context) layout.Dimensions { return w.drawTitle(gtx, th) },
		func(gtx layout.Context) layout.Dimensions { return w.drawSelection(gtx, th, view.Item) },
		func(gtx layout.Context) layout.Dimensions { return w.drawPhrase(gtx, th, view.Item) },
		func(gtx layout.Context) layout.Dimensions {
			return w.drawTrack(gtx, th, i18n.T("reference_title"), &w.referenceBtn, view.ReferencePlaying, w.reference)
		},
		func(gtx layout.Context) layout.Dimensions {
			if !view.HasRecording() || view.Recording {
				return layout.Dimensions{}
			}
			return w.drawTrack(gtx, th, i18n.T("recorded_title"), &w.recordedBtn, view.RecordedPlaying, w.recorded)
		},
		func(gtx layout.Context) layout.Dimensions { return w.drawRecording(gtx, th, view) },
		func(gtx layout.Context) layout.Dimensions {
			if !view.ShowTips() {
				return layout.Dimensions{}
			}
			return w.drawTips(gtx, th)
		},
		func(gtx layout.Context) layout.Dimensions {
			return label(th, 12, i18n.T("guide_footer"), colorTextDim, font.Normal).Layout(gtx)
		},
	}

	return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return material.List(th, &w.list).Layout(gtx, len(sections), func(gtx layout.Context, i int) layout.Dimensions {
			dims := sections[i](gtx)
			if dims.Size.Y > 0 && i < len(sections)-1 {
				dims.Size.Y += gtx.Dp(unit.Dp(12))
			}
			return dims
		})
	})
}

func (w *Window) drawTitle(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(label(th, 22, i18n.T("app_title"), colorText, font.Bold).Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
		layout.Rigid(label(th, 13, i18n.T("app_subtitle"), colorTextDim, font.Normal).Layout),
	)
}

// drawSelection shows the language buttons and the sentence stepper.
func (w *Window) drawSelection(gtx layout.Context, th *material.Theme, item catalog.PracticeItem) layout.Dimensions {
	return drawPanel(gtx, colorPanel, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(sectionHeader(th, i18n.T("select_language")).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				langs := catalog.Languages()
				children := make([]layout.Widget, len(langs))
				for i, l := range langs {
					lang := l
					children[i] = func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return drawChoice(gtx, th, w.langButtons[lang.Code], lang.Name, lang.Code == item.LanguageCode)
						})
					}
				}
				return flow(gtx, gtx.Dp(unit.Dp(8)), children)
			}),

			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),

			layout.Rigid(sectionHeader(th, i18n.T("select_sentence")).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				sentences := catalog.Sentences()
				text := catalog.SentenceLabel(sentences[item.SentenceIndex])
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return drawChoice(gtx, th, &w.prevBtn, "‹", false)
					}),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return label(th, 14, strconv.Itoa(item.SentenceIndex+1)+". "+text, colorText, font.Medium).Layout(gtx)
						})
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return drawChoice(gtx, th, &w.nextBtn, "›", false)
					}),
				)
			}),
		)
	})
}

// drawPhrase shows the sentence, its translation and the clickable
// phonetic transcription with the selected symbol's explanation.
func (w *Window) drawPhrase(gtx layout.Context, th *material.Theme, item catalog.PracticeItem) layout.Dimensions {
	w.symbols.sync(item)

	return drawPanel(gtx, colorPanel, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(label(th, 13, item.Text, colorTextDim, font.Normal).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(label(th, 22, item.Translation, colorText, font.Bold).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
			layout.Rigid(label(th, 12, item.Language, colorTextDim, font.Normal).Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if item.Phonetic == "" {
					return layout.Dimensions{}
				}
				return layout.Inset{Top: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return w.drawSymbols(gtx, th)
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if item.Phonetic == "" {
					return layout.Dimensions{}
				}
				return layout.Inset{Top: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return w.drawSymbolInfo(gtx, th, item.LanguageCode)
				})
			}),
		)
	})
}

func (w *Window) drawSymbols(gtx layout.Context, th *material.Theme) layout.Dimensions {
	row := &w.symbols
	children := make([]layout.Widget, len(row.tokens))
	for i, tok := range row.tokens {
		i, tok := i, tok
		children[i] = func(gtx layout.Context) layout.Dimensions {
			if !tok.Symbol {
				return label(th, 18, tok.Text, colorTextDim, font.Normal).Layout(gtx)
			}
			return drawSymbol(gtx, th, row.buttons[i], tok.Text, i == row.selected)
		}
	}
	return flow(gtx, gtx.Dp(unit.Dp(2)), children)
}

func (w *Window) drawSymbolInfo(gtx layout.Context, th *material.Theme, languageCode string) layout.Dimensions {
	res, ok := w.symbols.current(languageCode)
	if !ok {
		return label(th, 11, i18n.T("phonetic_hint"), colorTextDim, font.Normal).Layout(gtx)
	}

	rows := []layout.FlexChild{
		layout.Rigid(label(th, 18, res.Symbol, colorText, font.Bold).Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
		layout.Rigid(label(th, 13, res.Explanation, colorText, font.Normal).Layout),
	}
	if len(res.Examples) > 0 {
		rows = append(rows,
			layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
			layout.Rigid(label(th, 12, i18n.T("phonetic_examples"), colorTextDim, font.Medium).Layout),
		)
		for _, ex := range res.Examples {
			rows = append(rows, layout.Rigid(label(th, 12, "• "+ex, colorText, font.Normal).Layout))
		}
	}

	return drawPanel(gtx, colorPanelLight, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
	})
}

// drawTrack draws a titled waveform with its play/stop button.
func (w *Window) drawTrack(gtx layout.Context, th *material.Theme, title string, btn *widget.Clickable, playing bool, wf *waveform.Widget) layout.Dimensions {
	text, bg := "▶ "+i18n.T("play"), colorAccent
	if playing {
		text, bg = "■ "+i18n.T("stop"), colorRecord
	}

	return drawPanel(gtx, colorPanel, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, label(th, 15, title, colorText, font.Medium).Layout),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return drawButton(gtx, th, btn, text, bg, colorText, unit.Dp(6))
					}),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return wf.Layout(gtx, th)
			}),
		)
	})
}

// drawRecording shows the recording status, the live meter and the
// record/reset buttons.
func (w *Window) drawRecording(gtx layout.Context, th *material.Theme, view guide.View) layout.Dimensions {
	var status layout.Widget
	switch {
	case view.Recording:
		status = label(th, 14, i18n.Tf("recording_status", view.Elapsed), colorRecord, font.Medium).Layout
	case view.HasRecording():
		status = label(th, 14, i18n.T("recording_complete"), colorSuccess, font.Normal).Layout
	default:
		status = label(th, 14, i18n.T("ready_to_record"), colorTextDim, font.Normal).Layout
	}

	recordText, recordBg := "● "+i18n.T("start_recording"), colorAccent
	if view.Recording {
		recordText, recordBg = "■ "+i18n.T("stop_recording"), colorRecord
	}

	return drawPanel(gtx, colorPanel, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(status),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if !view.Recording {
					return layout.Dimensions{}
				}
				return layout.Inset{Top: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					var samples []float32
					if w.samples != nil {
						samples = w.samples.GetSamples()
					}
					return waveform.LayoutMeter(gtx, th, samples, view.Elapsed, waveform.DefaultMeterColors())
				})
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return drawButton(gtx, th, &w.recordBtn, recordText, recordBg, colorText, unit.Dp(8))
					}),
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						if !view.HasRecording() || view.Recording {
							return layout.Dimensions{}
						}
						return layout.Inset{Left: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							return drawButton(gtx, th, &w.resetBtn, "↻ "+i18n.T("reset"), colorPanelLight, colorText, unit.Dp(8))
						})
					}),
				)
			}),
		)
	})
}

func (w *Window) drawTips(gtx layout.Context, th *material.Theme) layout.Dimensions {
	rows := []layout.FlexChild{
		layout.Rigid(label(th, 15, i18n.T("tips_title"), colorText, font.Medium).Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
	}
	for _, key := range []string{"tip_listen", "tip_rhythm", "tip_symbols", "tip_practice"} {
		rows = append(rows, layout.Rigid(label(th, 13, "• "+i18n.T(key), colorTextDim, font.Normal).Layout))
	}
	return drawPanel(gtx, colorPanelLight, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, rows...)
	})
}

func label(th *material.Theme, size float32, text string, col color.NRGBA, weight font.Weight) material.LabelStyle {
	lbl := material.Label(th, unit.Sp(size), text)
	lbl.Color = col
	lbl.Font.Weight = weight
	return lbl
}

func sectionHeader(th *material.Theme, text string) material.LabelStyle {
	return label(th, 12, text, colorTextDim, font.Medium)
}

// drawPanel lays out content first to size its rounded background.
func drawPanel(gtx layout.Context, bg color.NRGBA, content layout.Widget) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X

	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(16)).Layout(gtx, content)
	call := macro.Stop()

	rr := gtx.Dp(unit.Dp(12))
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bg, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

func drawButton(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, bg, fg color.NRGBA, radius unit.Dp) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{
			Top: unit.Dp(8), Bottom: unit.Dp(8),
			Left: unit.Dp(16), Right: unit.Dp(16),
		}.Layout(gtx, label(th, 14, text, fg, font.Medium).Layout)
	})
	call := macro.Stop()

	rr := gtx.Dp(radius)
	rect := clip.RRect{
		Rect: image.Rectangle{Max: dims.Size},
		NE:   rr, NW: rr, SE: rr, SW: rr,
	}
	paint.FillShape(gtx.Ops, bg, rect.Op(gtx.Ops))

	call.Add(gtx.Ops)
	return dims
}

// drawChoice is a toggle-style button highlighted when selected.
func drawChoice(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, selected bool) layout.Dimensions {
	bg, fg := colorPanelLight, colorTextDim
	if selected {
		bg, fg = colorAccent, colorText
	}
	return drawButton(gtx, th, btn, text, bg, fg, unit.Dp(6))
}

func drawSymbol(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string, selected bool) layout.Dimensions {
	macro := op.Record(gtx.Ops)
	dims := material.Clickable(gtx, btn, func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Left: unit.Dp(2), Right: unit.Dp(2)}.Layout(gtx, label(th, 18, text, colorAccent, font.Medium).Layout)
	})
	call := macro.Stop()

	if selected {
		rr := gtx.Dp(unit.Dp(4))
		rect := clip.RRect{Rect: image.Rectangle{Max: dims.Size}, NE: rr, NW: rr, SE: rr, SW: rr}
		paint.FillShape(gtx.Ops, colorSelected, rect.Op(gtx.Ops))
	}
	call.Add(gtx.Ops)
	return dims
}

// flow places children left to right, wrapping to a new line when the
// next child would overflow the maximum width.
func flow(gtx layout.Context, gap int, children []layout.Widget) layout.Dimensions {
	maxW := gtx.Constraints.Max.X
	cgtx := gtx
	cgtx.Constraints.Min = image.Point{}

	var x, y, lineH, width int
	for _, child := range children {
		macro := op.Record(gtx.Ops)
		dims := child(cgtx)
		call := macro.Stop()

		if x > 0 && x+dims.Size.X > maxW {
			x = 0
			y += lineH + gap
			lineH = 0
		}
		off := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		off.Pop()

		x += dims.Size.X
		width = max(width, x)
		lineH = max(lineH, dims.Size.Y)
	}
	return layout.Dimensions{Size: image.Pt(width, y+lineH)}
}
