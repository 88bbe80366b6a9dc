package level

// Cursor is a bounds-checked sequential reader over a level's byte array.
// Position is explicit state: the header resolver saves and restores it
// while trial-decoding candidate layouts.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// ReadByte returns the next byte and advances by one.
// Returns ErrTruncated when no bytes remain.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, ErrTruncated
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadPoint reads two bytes as an (x, y) coordinate pair.
func (c *Cursor) ReadPoint() (Point, error) {
	x, err := c.ReadByte()
	if err != nil {
		return Point{}, err
	}
	y, err := c.ReadByte()
	if err != nil {
		return Point{}, err
	}
	return P(int(x), int(y)), nil
}

// Pos returns the current read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek moves the read position to an absolute offset.
func (c *Cursor) Seek(pos int) {
	c.pos = pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Rest returns the unread tail of the data without advancing.
func (c *Cursor) Rest() []byte {
	return c.data[c.pos:]
}
