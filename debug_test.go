package picker

import (
	"context"
	"testing"
)

func TestTraceDoesNotPanicWhenDisabled(t *testing.T) {
	trace(context.Background(), "value=%d", 42)
}

func TestTraceMarkerEndIsSafeWhenDisabled(t *testing.T) {
	g := traceMarker(context.Background(), "test-marker")
	g.End()
}
