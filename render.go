package picker

// Renderer produces the string an item is matched and displayed as. It maps
// an injected item of type T down to the text the fuzzy matcher searches
// and the span renderer draws, mirroring the teacher's line.Raw/line.Matched
// split between an item's underlying value and its display form.
type Renderer[T any] interface {
	Render(item *T) string
}

// RenderFunc adapts a plain function to a Renderer.
type RenderFunc[T any] func(item *T) string

func (f RenderFunc[T]) Render(item *T) string { return f(item) }

// StrRenderer renders items that are themselves strings, the common case
// for a simple line-oriented picker.
type StrRenderer struct{}

func (StrRenderer) Render(item *string) string { return *item }

// Stringer is implemented by item types that know how to render themselves;
// DisplayRenderer uses it so callers with a fmt.Stringer-like type don't
// need to write a RenderFunc by hand.
type Stringer interface {
	String() string
}

// DisplayRenderer renders any item implementing Stringer.
type DisplayRenderer[T Stringer] struct{}

func (DisplayRenderer[T]) Render(item *T) string { return (*item).String() }
