package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dropdeck/constants"
	"github.com/lixenwraith/dropdeck/item"
	"github.com/lixenwraith/dropdeck/notify"
	"github.com/lixenwraith/dropdeck/region"
)

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFile   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleFolder = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHover  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleDrag   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleWave   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleWaveAt = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleToast  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
)

// waveRunes are eighth blocks indexed by fill level
var waveRunes = []rune(" ▁▂▃▄▅▆▇█")

func (s *Shelf) render() {
	scr := s.term.Screen()
	scr.Clear()

	snapshot := s.store.Snapshot()
	s.placements = Layout(snapshot, s.width)
	if s.focusID == "" && len(s.placements) > 0 {
		s.focusID = s.placements[0].Item.ID
	}

	// Re-register hit regions from this frame's layout
	s.sources.Clear()
	s.targets.Clear()
	for _, p := range s.placements {
		s.sources.Register(p.Item.ID, p.Rect)
		if p.Item.Kind == item.KindFolder {
			s.targets.Register(p.Item.ID, p.Rect)
		}
	}

	drawText(scr, constants.ShelfMarginX, 0, styleTitle, "dropdeck")
	drawText(scr, constants.ShelfMarginX+9, 0, styleDim, "· drag files into folders")

	for _, p := range s.placements {
		s.drawItem(scr, p)
	}
	s.drawOverlay(scr)
	s.drawAudio(scr)
	s.drawStatus(scr)
	s.drawToast(scr)

	s.term.Show()
}

func (s *Shelf) drawItem(scr tcell.Screen, p Placement) {
	style := styleFile
	label := p.Item.Name
	if p.Item.Kind == item.KindFolder {
		style = styleFolder
		if p.Item.ID == s.hoverID {
			style = styleHover
		}
	}
	if subject, ok := s.ctrl.Subject(); ok && subject.ID == p.Item.ID {
		style = styleDim
	}
	if p.Item.ID == s.focusID {
		style = style.Bold(true).Underline(true)
	}

	drawBox(scr, p.Rect, style)
	inner := p.Rect.W - 2
	drawText(scr, p.Rect.X+1, p.Rect.Y+1, style, pad(label, inner))

	if p.Item.Kind == item.KindFolder {
		count := fmt.Sprintf(" %d ", len(p.Item.Contents))
		drawText(scr, p.Rect.X+p.Rect.W-len(count)-1, p.Rect.Y, style, count)
	}
}

// drawOverlay renders the dragged item's name following the pointer
func (s *Shelf) drawOverlay(scr tcell.Screen) {
	subject, ok := s.ctrl.Subject()
	if !ok || !s.dragging {
		return
	}
	x, y := s.ctrl.Pointer()
	label := " " + subject.Name + " "
	if y < 1 {
		y = 1
	}
	if x+len(label) > s.width {
		x = s.width - len(label)
	}
	drawText(scr, x, y-1, styleDrag, label)
}

func (s *Shelf) drawAudio(scr tcell.Screen) {
	if s.player == nil || len(s.envelope) == 0 || s.height < constants.WaveformHeight+4 {
		return
	}
	top := s.height - 2 - constants.WaveformHeight

	progress := 0
	if total := s.player.Length(); total > 0 {
		progress = int(int64(s.width) * int64(s.player.Position()) / int64(total))
	}

	for col := 0; col < s.width; col++ {
		bucket := col * len(s.envelope) / s.width
		eighths := int(s.envelope[bucket] * float64(constants.WaveformHeight) * 8)
		style := styleWave
		if col <= progress && s.player.Playing() {
			style = styleWaveAt
		}
		for row := 0; row < constants.WaveformHeight; row++ {
			fill := eighths - 8*row
			if fill < 0 {
				fill = 0
			}
			if fill > 8 {
				fill = 8
			}
			y := top + constants.WaveformHeight - 1 - row
			scr.SetContent(col, y, waveRunes[fill], nil, style)
		}
	}

	state := "paused"
	if s.player.Playing() {
		state = "playing"
	}
	transport := fmt.Sprintf("%s  %s / %s  vol %+.2f  [p] play/pause  [ ] ] seek  [+/-] volume",
		state, clockLabel(s.player.Position()), clockLabel(s.player.Length()), s.player.Volume())
	drawText(scr, constants.ShelfMarginX, s.height-2, styleDim, transport)
}

func (s *Shelf) drawStatus(scr tcell.Screen) {
	line := pad(s.status+"  ·  [space] pick up/drop  [esc] cancel  [q] quit", s.width)
	drawText(scr, 0, s.height-1, styleStatus, line)
}

// drawToast overlays the bottom bar while a notification is visible
func (s *Shelf) drawToast(scr tcell.Screen) {
	toast, ok := s.toasts.Active()
	if !ok {
		return
	}
	icon := "✓"
	if toast.Severity != notify.SeveritySuccess {
		icon = "·"
	}
	drawText(scr, 0, s.height-1, styleToast, pad(" "+icon+" "+toast.Message, s.width))
}

// drawBox renders a single-line border around the rect
func drawBox(scr tcell.Screen, r region.Rect, style tcell.Style) {
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		scr.SetContent(x, r.Y, '─', nil, style)
		scr.SetContent(x, r.Y+r.H-1, '─', nil, style)
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		scr.SetContent(r.X, y, '│', nil, style)
		scr.SetContent(r.X+r.W-1, y, '│', nil, style)
	}
	scr.SetContent(r.X, r.Y, '┌', nil, style)
	scr.SetContent(r.X+r.W-1, r.Y, '┐', nil, style)
	scr.SetContent(r.X, r.Y+r.H-1, '└', nil, style)
	scr.SetContent(r.X+r.W-1, r.Y+r.H-1, '┘', nil, style)
}

func drawText(scr tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		scr.SetContent(col, y, r, nil, style)
		col++
	}
}

// clockLabel formats a playback offset as m:ss
func clockLabel(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// pad truncates or right-pads text to the given rune width
func pad(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		if width < 1 {
			return ""
		}
		return string(runes[:width-1]) + "…"
	}
	for len(runes) < width {
		runes = append(runes, ' ')
	}
	return string(runes)
}
