package picker

// Key names one key press the terminal backend decoded, independent of any
// particular terminal library's own key type, so keymap.go and the rest of
// the picker stay decoupled from tcell.
type Key int

const (
	KeyRune Key = iota // plain character; see Event.Rune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBacktab // shift-tab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlU
	KeyCtrlW
	KeyAltB
	KeyAltF
)

// EventKind distinguishes the shapes of terminal input the picker reacts
// to, generalizing the teacher's own Event (which only ever carried key
// presses) to also cover terminal resizes and bracketed paste, following
// the event/bind.rs::Event enum in the original picker.
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
	EventPaste
)

// Event is one unit of terminal input delivered to the picker's frame loop.
type Event struct {
	Kind EventKind

	// Key and Rune are set when Kind == EventKey. Rune is only meaningful
	// when Key == KeyRune.
	Key  Key
	Rune rune

	// Width and Height are set when Kind == EventResize.
	Width, Height int

	// Text is set when Kind == EventPaste: the bracketed-paste payload,
	// delivered as a single event rather than one EventKey per rune so a
	// pasted multi-line path doesn't get fuzzy-matched keystroke by
	// keystroke.
	Text string
}
