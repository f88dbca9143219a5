package views

// Scroller tracks a cursor over a list and the window of rows kept visible
// around it.
type Scroller struct {
	height int
	offset int
	cursor int
	total  int
}

// NewScroller creates a scroller showing height rows at a time
func NewScroller(height int) *Scroller {
	s := &Scroller{}
	s.SetHeight(height)
	return s
}

// SetHeight changes the number of visible rows
func (s *Scroller) SetHeight(height int) {
	if height <= 0 {
		height = defaultListHeight
	}
	s.height = height
	s.follow()
}

// SetTotal sets the list length, keeping the cursor in range
func (s *Scroller) SetTotal(total int) {
	s.total = total
	s.cursor = min(s.cursor, max(total-1, 0))
	s.follow()
}

// Cursor returns the absolute cursor position
func (s *Scroller) Cursor() int {
	return s.cursor
}

// Up moves the cursor one row up
func (s *Scroller) Up() {
	if s.cursor > 0 {
		s.cursor--
		s.follow()
	}
}

// Down moves the cursor one row down
func (s *Scroller) Down() {
	if s.cursor < s.total-1 {
		s.cursor++
		s.follow()
	}
}

// PageDown moves the cursor a full window down
func (s *Scroller) PageDown() {
	s.cursor = min(s.cursor+s.height, max(s.total-1, 0))
	s.follow()
}

// PageUp moves the cursor a full window up
func (s *Scroller) PageUp() {
	s.cursor = max(s.cursor-s.height, 0)
	s.follow()
}

// Visible returns the half-open range of rows to render
func (s *Scroller) Visible() (start, end int) {
	return s.offset, min(s.offset+s.height, s.total)
}

// Reset moves back to the first row
func (s *Scroller) Reset() {
	s.cursor = 0
	s.offset = 0
}

// follow shifts the window so that the cursor stays inside it
func (s *Scroller) follow() {
	if s.cursor < s.offset {
		s.offset = s.cursor
	} else if s.cursor >= s.offset+s.height {
		s.offset = s.cursor - s.height + 1
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
