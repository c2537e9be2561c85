package picker

import (
	"context"

	pdebug "github.com/lestrrat-go/pdebug"
)

// trace logs a debug trace line when pdebug is enabled (PDEBUG_TRACE set in
// the environment), matching how the teacher's screen_inline.go and peco.go
// instrument the frame loop and terminal setup/teardown.
func trace(ctx context.Context, f string, args ...interface{}) {
	if !pdebug.Enabled {
		return
	}
	pdebug.Printf(ctx, f, args...)
}

// traceMarker wraps pdebug.Marker so driver code can do:
//
//	g := traceMarker(ctx, "Driver.run")
//	defer g.End()
func traceMarker(ctx context.Context, name string) interface {
	End()
} {
	if !pdebug.Enabled {
		return noopMarker{}
	}
	return pdebug.Marker(ctx, name)
}

type noopMarker struct{}

func (noopMarker) End() {}
