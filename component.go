package picker

import "github.com/peco-labs/gopicker/internal/cell"

// Status is the result of handling one event against a Component: it
// reports whether the component needs to be redrawn, and supports merging
// two statuses together (so a batch of folded events can report whether
// any of them, not just the last, requires a redraw).
type Status interface {
	// Merge folds other into the receiver, returning the combined status.
	Merge(other Status) Status
	NeedsRedraw() bool
}

// BoolStatus is the simplest Status: true means redraw.
type BoolStatus bool

func (b BoolStatus) Merge(other Status) Status {
	o, _ := other.(BoolStatus)
	return b || o
}

func (b BoolStatus) NeedsRedraw() bool { return bool(b) }

// Component is implemented by the picker's screen regions (the prompt and
// the match list): each knows how to fold an event into its own state and
// how to redraw itself into a fixed-size cell region.
type Component[E any] interface {
	Handle(event E) Status
	Draw(width, height int, sink CellSink) error
}

// CellSink is the minimal terminal-writing surface a Component needs: put
// one cell's worth of content at (col, row) with a style, matching how the
// picker driver backs this with a tcell.Screen without coupling every
// component directly to the tcell API. It is an alias of internal/cell.Sink
// so that internal renderers (internal/span) can depend on the cell types
// without importing this root package and creating an import cycle.
type CellSink = cell.Sink

// CellColor names the small fixed palette the picker's own rendering uses.
type CellColor = cell.Color

const (
	ColorDefault = cell.ColorDefault
	ColorCyan    = cell.ColorCyan
	ColorMagenta = cell.ColorMagenta
	ColorDarkGrey = cell.ColorDarkGrey
)

// CellStyle is a backend-agnostic style descriptor; the tcell-backed sink
// translates it to a tcell.Style.
type CellStyle = cell.Style
