package pagination

// DefaultPageSize is the number of items revealed per page.
const DefaultPageSize = 4

// Window reveals a fixed source slice page by page. The cursor counts the
// items revealed so far and never exceeds the source length.
type Window[T any] struct {
	source []T
	size   int
	cursor int
}

// NewWindow reveals the first page of source immediately.
func NewWindow[T any](source []T, size int) *Window[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	w := &Window[T]{source: source, size: size}
	w.cursor = min(size, len(source))
	return w
}

// Revealed returns every item revealed so far.
func (w *Window[T]) Revealed() []T {
	return w.source[:w.cursor]
}

// Next reveals the following page and returns it. It returns nil once the
// source is exhausted.
func (w *Window[T]) Next() []T {
	if !w.HasMore() {
		return nil
	}
	end := min(w.cursor+w.size, len(w.source))
	page := w.source[w.cursor:end]
	w.cursor = end
	return page
}

func (w *Window[T]) HasMore() bool {
	return w.cursor < len(w.source)
}

func (w *Window[T]) Cursor() int {
	return w.cursor
}

func (w *Window[T]) Len() int {
	return len(w.source)
}
