package snake

import "github.com/gammazero/deque"

// Body is the ordered list of cells the snake occupies, head first.
// A deque keeps both the head insert and the tail trim O(1).
type Body struct {
	cells deque.Deque[Point]
}

// NewBody creates a body from cells given head first.
func NewBody(cells []Point) *Body {
	b := &Body{}
	for _, c := range cells {
		b.cells.PushBack(c)
	}
	return b
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return b.cells.Len()
}

// Head returns the first cell.
func (b *Body) Head() Point {
	return b.cells.Front()
}

// Tail returns the last cell.
func (b *Body) Tail() Point {
	return b.cells.Back()
}

// At returns the i-th cell counting from the head.
func (b *Body) At(i int) Point {
	return b.cells.At(i)
}

// PushHead prepends a new head cell.
func (b *Body) PushHead(p Point) {
	b.cells.PushFront(p)
}

// Grow appends n copies of the tail cell. The copies unfold as the
// snake moves on.
func (b *Body) Grow(n int) {
	if b.cells.Len() == 0 {
		return
	}
	tail := b.cells.Back()
	for range n {
		b.cells.PushBack(tail)
	}
}

// Trim removes up to n cells from the tail. The head is never removed.
func (b *Body) Trim(n int) {
	for range n {
		if b.cells.Len() <= 1 {
			return
		}
		b.cells.PopBack()
	}
}

// BitesItself reports whether the head shares a cell with the rest of
// the body.
func (b *Body) BitesItself() bool {
	if b.cells.Len() < 2 {
		return false
	}
	head := b.cells.Front()
	for i := 1; i < b.cells.Len(); i++ {
		if b.cells.At(i) == head {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body, head first.
func (b *Body) Cells() []Point {
	out := make([]Point, b.cells.Len())
	for i := range out {
		out[i] = b.cells.At(i)
	}
	return out
}
