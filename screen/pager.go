package screen

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"go.abhg.dev/chromatui"
)

// Pager displays lines of spans on a tcell screen
// and lets the user scroll through them.
//
// The screen must already be initialized.
type Pager struct {
	Screen tcell.Screen
	Lines  [][]chromatui.Span

	// Base is the style that spans are patched onto.
	Base tcell.Style

	// Log receives debug messages. Optional.
	Log *log.Logger

	top int // index of the first visible line
}

// Run draws the pager and processes events
// until the user quits or the screen is finalized.
func (p *Pager) Run() error {
	p.draw()
	for {
		switch ev := p.Screen.PollEvent().(type) {
		case nil:
			return nil

		case *tcell.EventResize:
			p.Screen.Sync()
			p.scroll(0)
			p.draw()

		case *tcell.EventKey:
			if p.handleKey(ev) {
				return nil
			}
			p.draw()
		}
	}
}

// handleKey reacts to a key press, reporting whether the pager should exit.
func (p *Pager) handleKey(ev *tcell.EventKey) (quit bool) {
	_, height := p.Screen.Size()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		p.scroll(-1)
	case tcell.KeyDown, tcell.KeyEnter:
		p.scroll(1)
	case tcell.KeyPgUp:
		p.scroll(-height)
	case tcell.KeyPgDn:
		p.scroll(height)
	case tcell.KeyHome:
		p.scroll(-len(p.Lines))
	case tcell.KeyEnd:
		p.scroll(len(p.Lines))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			p.scroll(-1)
		case 'j':
			p.scroll(1)
		case 'b':
			p.scroll(-height)
		case ' ', 'f':
			p.scroll(height)
		case 'g':
			p.scroll(-len(p.Lines))
		case 'G':
			p.scroll(len(p.Lines))
		}
	}
	return false
}

// scroll moves the view by delta lines,
// keeping the last page of lines in view.
func (p *Pager) scroll(delta int) {
	_, height := p.Screen.Size()
	last := max(len(p.Lines)-height, 0)
	p.top = min(max(p.top+delta, 0), last)
}

func (p *Pager) draw() {
	width, height := p.Screen.Size()

	p.Screen.SetStyle(p.Base)
	p.Screen.Clear()
	for row := 0; row < height && p.top+row < len(p.Lines); row++ {
		DrawLine(p.Screen, 0, row, width, p.Base, p.Lines[p.top+row])
	}
	p.Screen.Show()

	if p.Log != nil {
		p.Log.Printf("pager: drew lines %d-%d of %d", p.top+1,
			min(p.top+height, len(p.Lines)), len(p.Lines))
	}
}
