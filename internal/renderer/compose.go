package renderer

import (
	"errors"

	"github.com/dshills/te/internal/engine"
	"github.com/dshills/te/internal/input/menu"
	"github.com/dshills/te/internal/project/browser"
	"github.com/dshills/te/internal/renderer/core"
	"github.com/dshills/te/internal/renderer/highlight"
	"github.com/dshills/te/internal/renderer/statusline"
)

// ErrRenderOverflow reports a terminal too small to draw the editor.
var ErrRenderOverflow = errors.New("terminal too small")

// TooSmallNotice is drawn instead of the editor on tiny terminals.
const TooSmallNotice = "Terminal too small."

var (
	styleDefault = core.DefaultStyle()
	styleReverse = core.DefaultStyle().Reverse()
	styleDim     = core.DefaultStyle().Dim()
	styleBold    = core.DefaultStyle().Bold()
)

// Compose draws s into a new frame. A terminal below the minimum size gets
// a notice and ErrRenderOverflow.
func Compose(s Scene) (*Frame, error) {
	g := s.Geometry
	f := NewFrame(g.Width, g.Height)
	f.HideCursor()

	if g.TooSmall() {
		f.Text(0, 0, statusline.Truncate(TooSmallNotice, g.Width), styleDefault)
		return f, ErrRenderOverflow
	}
	if s.Gutter != nil {
		g.GutterWidth = s.Gutter.Width()
	}

	if s.Browser != nil {
		drawBrowser(f, s.Browser, g)
	} else if s.Doc != nil {
		drawContent(f, s, g)
		drawGutter(f, s, g)
	}
	drawMenu(f, s)
	drawBottom(f, s, g)
	placeCursor(f, s, g)
	return f, nil
}

func drawContent(f *Frame, s Scene, g core.Geometry) {
	doc := s.Doc
	sel := doc.Selection()
	top := doc.TopLine()
	left := g.GutterWidth

	for row := 0; row < g.ContentHeight(); row++ {
		line := top + row
		if line >= doc.LineCount() {
			break
		}
		y := core.ContentTop + row
		col := 0
		for _, tok := range highlight.Tokens(s.Classifier, string(doc.LineRunes(line))) {
			style := styleDefault
			if s.Styles != nil {
				style = s.Styles.Lookup(tok.Kind)
			}
			for _, r := range tok.Text {
				x := left + col
				if x >= g.Width {
					break
				}
				cs := style
				if sel != nil && sel.Contains(engine.Point{Line: line, Column: col}) {
					cs = cs.Reverse()
				}
				// One cell per rune keeps screen columns equal to
				// document columns.
				f.Set(x, y, core.Cell{Rune: printable(r), Width: 1, Style: cs})
				col++
			}
		}
	}
}

func drawGutter(f *Frame, s Scene, g core.Geometry) {
	if s.Gutter == nil || !s.Gutter.Enabled() {
		return
	}
	top := s.Doc.TopLine()
	for row := 0; row < g.ContentHeight(); row++ {
		line := top + row
		if line >= s.Doc.LineCount() {
			break
		}
		f.Text(0, core.ContentTop+row, s.Gutter.Format(line), s.Gutter.Style())
	}
}

func drawMenu(f *Frame, s Scene) {
	if s.Menu == nil {
		return
	}
	active := s.Mode == statusline.ModeMenu
	for i, title := range s.Menu.Titles() {
		style := styleDefault
		if active && i == s.Menu.Current() {
			style = styleReverse
		}
		f.Text(menu.TitleX(i), 0, menu.TitleLabel(title), style)
	}
	if !active || !s.Menu.IsOpen() {
		return
	}

	x := menu.TitleX(s.Menu.Current())
	width := s.Menu.DropdownWidth()
	for i, item := range s.Menu.Items() {
		style := styleDefault
		if i == s.Menu.Selected() {
			style = styleReverse
		}
		f.Text(x, 1+i, statusline.Fit(" "+item, width), style)
	}
}

func drawBrowser(f *Frame, b BrowserView, g core.Geometry) {
	l := browser.NewLayout(g.Width, g.Height)
	if !l.Fits() {
		return
	}
	box := l.Box()
	drawBox(f, box)

	title := statusline.Truncate(" File Browser: "+b.Title()+" ", box.Width()-2)
	tx := box.Left + (box.Width()-core.StringWidth(title))/2
	f.Text(tx, box.Top, title, styleBold)

	inner := box.Left + 2
	f.Text(inner, l.PathRow(), statusline.TruncateLeft(b.Dir(), l.ItemWidth()), styleDim)

	entries := b.Entries()
	for row := 0; row < l.ItemRows(); row++ {
		idx := b.Top() + row
		if idx >= len(entries) {
			break
		}
		e := entries[idx]
		style := styleDefault
		switch e.Kind {
		case browser.EntryParent, browser.EntryError:
			style = styleDim
		case browser.EntryDir:
			style = styleBold
		}
		label := statusline.Truncate(e.Label(), l.ItemWidth())
		if idx == b.Selected() {
			style = style.Reverse()
			label = statusline.Fit(label, l.ItemWidth())
		}
		f.Text(inner, l.FirstItemRow()+row, label, style)
	}

	f.Text(inner, l.InstructionsRow(), statusline.Truncate(statusline.BrowserInstructions, l.ItemWidth()), styleDim)
}

func drawBox(f *Frame, box core.ScreenRect) {
	f.Fill(box, styleDefault)
	right, bottom := box.Right-1, box.Bottom-1
	for x := box.Left + 1; x < right; x++ {
		f.Set(x, box.Top, core.NewCell('─'))
		f.Set(x, bottom, core.NewCell('─'))
	}
	for y := box.Top + 1; y < bottom; y++ {
		f.Set(box.Left, y, core.NewCell('│'))
		f.Set(right, y, core.NewCell('│'))
	}
	f.Set(box.Left, box.Top, core.NewCell('┌'))
	f.Set(right, box.Top, core.NewCell('┐'))
	f.Set(box.Left, bottom, core.NewCell('└'))
	f.Set(right, bottom, core.NewCell('┘'))
}

func drawBottom(f *Frame, s Scene, g core.Geometry) {
	w := g.Width

	info := statusline.Info{Theme: s.Theme, Mode: s.Mode}
	if s.Doc != nil {
		cur := s.Doc.Cursor()
		info.Path, info.Line, info.Column = s.Doc.Path(), cur.Line, cur.Column
	}
	badgeName := s.ModeName
	if badgeName == "" {
		badgeName = s.Mode
	}
	badge := statusline.ModeIndicator(badgeName)
	status := statusline.Status(info)
	if bw := core.StringWidth(badge); bw < w {
		status = statusline.Fit(status, w-bw) + badge
	}
	f.Text(0, g.StatusRow(), statusline.Fit(status, w), styleReverse)

	if s.PromptActive {
		f.Text(0, g.MessageRow(), statusline.Fit(s.Prompt, w), styleReverse)
	} else {
		f.Text(0, g.MessageRow(), statusline.Fit(s.Message, w), styleDefault)
	}
	f.Text(0, g.HelpRow(), statusline.Fit(statusline.Help(s.Mode), w), styleDim)
}

func placeCursor(f *Frame, s Scene, g core.Geometry) {
	if s.PromptActive {
		x := min(core.StringWidth(s.Prompt), g.Width-1)
		f.SetCursor(core.ScreenPos{Row: g.MessageRow(), Col: x})
		return
	}
	if !s.CursorVisible || s.Doc == nil || s.Browser != nil {
		return
	}
	cur := s.Doc.Cursor()
	pos := core.ScreenPos{
		Row: cur.Line - s.Doc.TopLine() + core.ContentTop,
		Col: cur.Column + g.GutterWidth,
	}
	bounds := core.ScreenRect{Top: core.ContentTop, Left: 0, Bottom: g.StatusRow(), Right: g.Width}
	f.SetCursor(bounds.Clamp(pos))
}
