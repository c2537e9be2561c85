package picker

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/peco-labs/gopicker/internal/cell"
)

// Terminal is the tcell-backed screen driving one picker session, drawing
// into an inline region at the bottom of the terminal rather than taking
// over the full alternate screen buffer, so the user's scrollback history
// above the picker survives after it exits. Ported from the teacher's
// InlineScreen (screen_inline.go), generalized to the picker's own
// CellSink/Style abstraction instead of peco's Attribute type.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	height  int
	yOffset int

	savedAltscreen string

	pasting  bool
	pasteBuf []rune
}

// NewTerminal constructs an uninitialized Terminal; call Init before use.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Init opens the terminal in inline mode, reserving resolveHeight(termRows)
// rows at the bottom of the screen for the picker.
func (t *Terminal) Init(resolveHeight func(termRows int) int) error {
	t.savedAltscreen = os.Getenv("TCELL_ALTSCREEN")
	os.Setenv("TCELL_ALTSCREEN", "disable")

	screen, err := tcell.NewScreen()
	if err != nil {
		os.Setenv("TCELL_ALTSCREEN", t.savedAltscreen)
		return WrapIO(fmt.Errorf("create tcell screen: %w", err))
	}
	if err := screen.Init(); err != nil {
		os.Setenv("TCELL_ALTSCREEN", t.savedAltscreen)
		return ErrNotInteractive
	}

	t.mu.Lock()
	t.screen = screen
	t.mu.Unlock()

	screen.EnablePaste()

	termWidth, termHeight := screen.Size()
	t.height = resolveHeight(termHeight)
	t.yOffset = termHeight - t.height

	if tty, ok := screen.Tty(); ok {
		buf := make([]byte, t.height)
		for i := range buf {
			buf[i] = '\n'
		}
		_, _ = tty.Write(buf)
		fmt.Fprintf(tty, "\033[%dA", t.height)
	}

	screen.LockRegion(0, 0, termWidth, t.yOffset, true)
	for y := 0; y < t.height; y++ {
		for x := 0; x < termWidth; x++ {
			screen.SetContent(x, t.yOffset+y, ' ', nil, tcell.StyleDefault)
		}
	}
	screen.Show()
	return nil
}

// Close restores the terminal to its pre-Init state. Safe to call more than
// once and safe to call even if Init failed partway through.
func (t *Terminal) Close() {
	t.mu.Lock()
	scr := t.screen
	t.screen = nil
	t.mu.Unlock()

	if scr != nil {
		if tty, ok := scr.Tty(); ok {
			fmt.Fprintf(tty, "\033[%d;1H", t.yOffset+1)
			_, _ = tty.Write([]byte("\033[J"))
		}
		scr.Fini()
	}

	if t.savedAltscreen == "" {
		os.Unsetenv("TCELL_ALTSCREEN")
	} else {
		os.Setenv("TCELL_ALTSCREEN", t.savedAltscreen)
	}
}

// Size returns the inline region's (width, height) in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen == nil {
		return 0, 0
	}
	w, _ := t.screen.Size()
	return w, t.height
}

// SetCell implements cell.Sink.
func (t *Terminal) SetCell(col, row int, r rune, style cell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen == nil {
		return
	}
	t.screen.SetContent(col, row+t.yOffset, r, nil, styleToTcell(style))
}

// MoveCursor implements cell.Sink.
func (t *Terminal) MoveCursor(col, row int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen == nil {
		return
	}
	t.screen.ShowCursor(col, row+t.yOffset)
}

// Flush pushes all queued SetCell/MoveCursor calls to the real terminal.
func (t *Terminal) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.screen != nil {
		t.screen.Show()
	}
}

func styleToTcell(s cell.Style) tcell.Style {
	st := tcell.StyleDefault
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	if fg, ok := colorToTcell(s.Foreground); ok {
		st = st.Foreground(fg)
	}
	if bg, ok := colorToTcell(s.Background); ok {
		st = st.Background(bg)
	}
	return st
}

func colorToTcell(c cell.Color) (tcell.Color, bool) {
	switch c {
	case cell.ColorCyan:
		return tcell.ColorTeal, true
	case cell.ColorMagenta:
		return tcell.ColorPurple, true
	case cell.ColorDarkGrey:
		return tcell.ColorGray, true
	default:
		return tcell.ColorDefault, false
	}
}

// PollEvents decodes tcell events from the terminal into picker Events,
// delivered on the returned channel until ctx is canceled or the screen
// closes. On resize the inline region's height is recomputed against
// resolveHeight before the resize event is forwarded.
func (t *Terminal) PollEvents(ctx context.Context, resolveHeight func(termRows int) int) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for {
			t.mu.Lock()
			scr := t.screen
			t.mu.Unlock()
			if scr == nil {
				return
			}

			ev := scr.PollEvent()
			if ev == nil {
				return
			}

			var pe Event
			switch e := ev.(type) {
			case *tcell.EventResize:
				var w, h int
				t.mu.Lock()
				if t.screen != nil {
					tw, th := t.screen.Size()
					t.height = resolveHeight(th)
					t.yOffset = th - t.height
					t.screen.LockRegion(0, 0, tw, t.yOffset, true)
					w, h = tw, t.height
				}
				t.mu.Unlock()
				pe = Event{Kind: EventResize, Width: w, Height: h}
			case *tcell.EventPaste:
				if e.Start() {
					t.pasting = true
					t.pasteBuf = t.pasteBuf[:0]
					continue
				}
				t.pasting = false
				pe = Event{Kind: EventPaste, Text: string(t.pasteBuf)}
				t.pasteBuf = nil
			case *tcell.EventKey:
				if t.pasting {
					if e.Key() == tcell.KeyRune {
						t.pasteBuf = append(t.pasteBuf, e.Rune())
					} else if e.Key() == tcell.KeyEnter {
						t.pasteBuf = append(t.pasteBuf, '\n')
					}
					continue
				}
				pe = tcellKeyToEvent(e)
			default:
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- pe:
			}
		}
	}()
	return out
}

func tcellKeyToEvent(e *tcell.EventKey) Event {
	if e.Key() == tcell.KeyRune {
		return Event{Kind: EventKey, Key: KeyRune, Rune: e.Rune()}
	}

	switch e.Key() {
	case tcell.KeyEnter:
		return Event{Kind: EventKey, Key: KeyEnter}
	case tcell.KeyEscape:
		return Event{Kind: EventKey, Key: KeyEscape}
	case tcell.KeyTab:
		return Event{Kind: EventKey, Key: KeyTab}
	case tcell.KeyBacktab:
		return Event{Kind: EventKey, Key: KeyBacktab}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Kind: EventKey, Key: KeyBackspace}
	case tcell.KeyDelete:
		return Event{Kind: EventKey, Key: KeyDelete}
	case tcell.KeyLeft:
		return Event{Kind: EventKey, Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Kind: EventKey, Key: KeyRight}
	case tcell.KeyUp:
		return Event{Kind: EventKey, Key: KeyUp}
	case tcell.KeyDown:
		return Event{Kind: EventKey, Key: KeyDown}
	case tcell.KeyHome:
		return Event{Kind: EventKey, Key: KeyHome}
	case tcell.KeyEnd:
		return Event{Kind: EventKey, Key: KeyEnd}
	case tcell.KeyCtrlA:
		return Event{Kind: EventKey, Key: KeyCtrlA}
	case tcell.KeyCtrlB:
		return Event{Kind: EventKey, Key: KeyCtrlB}
	case tcell.KeyCtrlC:
		return Event{Kind: EventKey, Key: KeyCtrlC}
	case tcell.KeyCtrlD:
		return Event{Kind: EventKey, Key: KeyCtrlD}
	case tcell.KeyCtrlE:
		return Event{Kind: EventKey, Key: KeyCtrlE}
	case tcell.KeyCtrlF:
		return Event{Kind: EventKey, Key: KeyCtrlF}
	case tcell.KeyCtrlG:
		return Event{Kind: EventKey, Key: KeyCtrlG}
	case tcell.KeyCtrlQ:
		return Event{Kind: EventKey, Key: KeyCtrlQ}
	case tcell.KeyCtrlR:
		return Event{Kind: EventKey, Key: KeyCtrlR}
	case tcell.KeyCtrlK:
		return Event{Kind: EventKey, Key: KeyCtrlK}
	case tcell.KeyCtrlU:
		return Event{Kind: EventKey, Key: KeyCtrlU}
	case tcell.KeyCtrlW:
		return Event{Kind: EventKey, Key: KeyCtrlW}
	default:
		return Event{Kind: EventKey, Key: KeyRune, Rune: 0}
	}
}
