// Package menu holds the state of the menu bar and its dropdowns.
//
// The bar sits on row 0 with titles spaced TitleSpacing columns apart. A
// dropdown opens directly under its title and lists the title's items.
// Keyboard navigation wraps in both directions.
package menu

import "fmt"

// TitleSpacing is the column distance between bar titles.
const TitleSpacing = 10

// Item identifies a menu entry by its title and name.
type Item struct {
	Menu string
	Name string
}

// String returns "Menu:Name".
func (i Item) String() string {
	return fmt.Sprintf("%s:%s", i.Menu, i.Name)
}

// Result is the outcome of feeding an event to the menu.
type Result uint8

const (
	// ResultNone means the menu consumed the event and nothing was chosen.
	ResultNone Result = iota
	// ResultSelect means an item was chosen.
	ResultSelect
	// ResultClose means the menu asked to be dismissed.
	ResultClose
	// ResultOutside means a click fell outside the bar and dropdown.
	ResultOutside
)

// Menu is the menu bar state.
type Menu struct {
	titles   []string
	submenus map[string][]string
	current  int
	sub      int
	open     bool
}

// New creates a menu with the given titles and items per title.
func New(titles []string, submenus map[string][]string) *Menu {
	return &Menu{titles: titles, submenus: submenus}
}

// Titles returns the bar titles.
func (m *Menu) Titles() []string {
	return m.titles
}

// Current returns the index of the highlighted title.
func (m *Menu) Current() int {
	return m.current
}

// Selected returns the index of the highlighted dropdown item.
func (m *Menu) Selected() int {
	return m.sub
}

// IsOpen returns true if the dropdown is shown.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Items returns the items of the highlighted title.
func (m *Menu) Items() []string {
	if len(m.titles) == 0 {
		return nil
	}
	return m.submenus[m.titles[m.current]]
}

// Open shows the dropdown of the highlighted title.
func (m *Menu) Open() {
	m.open = true
	m.sub = 0
}

// Close hides the dropdown.
func (m *Menu) Close() {
	m.open = false
}

// Next highlights the next title, wrapping.
func (m *Menu) Next() {
	m.step(1)
}

// Prev highlights the previous title, wrapping.
func (m *Menu) Prev() {
	m.step(-1)
}

func (m *Menu) step(d int) {
	if len(m.titles) == 0 {
		return
	}
	m.current = wrap(m.current+d, len(m.titles))
	m.sub = 0
}

// Down highlights the next dropdown item, wrapping. It does nothing while
// the dropdown is closed.
func (m *Menu) Down() {
	if m.open && len(m.Items()) > 0 {
		m.sub = wrap(m.sub+1, len(m.Items()))
	}
}

// Up highlights the previous dropdown item, wrapping.
func (m *Menu) Up() {
	if m.open && len(m.Items()) > 0 {
		m.sub = wrap(m.sub-1, len(m.Items()))
	}
}

// Activate opens the dropdown, or chooses the highlighted item if it is
// already open.
func (m *Menu) Activate() (Item, Result) {
	if !m.open {
		m.Open()
		return Item{}, ResultNone
	}
	items := m.Items()
	if len(items) == 0 {
		return Item{}, ResultNone
	}
	return Item{Menu: m.titles[m.current], Name: items[m.sub]}, ResultSelect
}

// TitleX returns the column of title i.
func TitleX(i int) int {
	return i * TitleSpacing
}

// TitleLabel returns the padded bar label of a title.
func TitleLabel(title string) string {
	return " " + title + " "
}

// DropdownWidth returns the width of the open dropdown, padding included.
func (m *Menu) DropdownWidth() int {
	w := 0
	for _, it := range m.Items() {
		w = max(w, len([]rune(it)))
	}
	return w + 2
}

// Click resolves a left click at (x, y). Row 0 toggles or switches the
// dropdown. A click on an open dropdown item chooses it. Anything else is
// outside.
func (m *Menu) Click(x, y int) (Item, Result) {
	if y == 0 {
		i := x / TitleSpacing
		if x < 0 || i >= len(m.titles) {
			m.open = false
			return Item{}, ResultNone
		}
		if m.open && m.current == i {
			m.open = false
			return Item{}, ResultNone
		}
		m.current = i
		m.Open()
		return Item{}, ResultNone
	}

	if m.open {
		left := TitleX(m.current)
		idx := y - 1
		if idx >= 0 && idx < len(m.Items()) && x >= left && x < left+m.DropdownWidth() {
			m.sub = idx
			return Item{Menu: m.titles[m.current], Name: m.Items()[idx]}, ResultSelect
		}
	}
	return Item{}, ResultOutside
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
