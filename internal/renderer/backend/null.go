package backend

import (
	"sync"

	"github.com/dshills/te/internal/renderer/core"
)

// NullBackend is an in-memory backend for tests. Events are scripted with
// QueueEvent and consumed in order. A drained queue yields EventNone in
// either read mode so tests never hang.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	events        []Event
	blocking      bool
	blockingReads int
	colors        int

	cursorX, cursorY int
	cursorVisible    bool
	shows            int
	initialized      bool
}

var _ Backend = (*NullBackend)(nil)

// NewNullBackend creates a null backend with the given size.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{width: width, height: height, colors: 1 << 24}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = false
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) Colors() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.colors
}

// SetColors sets the reported color count.
func (b *NullBackend) SetColors(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.colors = n
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = cell
}

// Cell returns the cell at x, y, or an empty cell off screen.
func (b *NullBackend) Cell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return core.EmptyCell()
	}
	return b.cells[y][x]
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.blocking {
		b.blockingReads++
	}
	if len(b.events) == 0 {
		return Event{Type: EventNone}
	}
	ev := b.events[0]
	b.events = b.events[1:]
	if ev.Type == EventResize {
		b.width, b.height = ev.Width, ev.Height
		b.allocate()
	}
	return ev
}

func (b *NullBackend) SetBlocking(blocking bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blocking = blocking
}

// Blocking reports the current read mode.
func (b *NullBackend) Blocking() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blocking
}

// QueueEvent appends events to the scripted input.
func (b *NullBackend) QueueEvent(events ...Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
}

// Pending returns the number of unread scripted events.
func (b *NullBackend) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// BlockingReads returns how many reads happened in blocking mode.
func (b *NullBackend) BlockingReads() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blockingReads
}

// CursorPosition returns the last cursor position and whether it is shown.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Shows returns how many frames were flushed.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Row returns row y as a string, for assertions.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.Rune == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, c.Rune)
	}
	return string(runes)
}

// KeyEvent builds a key event.
func KeyEvent(k Key, mod ModMask) Event {
	return Event{Type: EventKey, Key: k, Mod: mod}
}

// RuneEvent builds a printable key event.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// MouseEvent builds a mouse event.
func MouseEvent(x, y int, button MouseButton, action MouseAction) Event {
	return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseButton: button, MouseAction: action}
}

// ResizeEvent builds a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}
