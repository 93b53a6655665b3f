package domain

import "strings"

// Buffer holds the in-memory content of the open entry and a
// character-based cursor. Content is a sequence of lines split on "\n";
// the cursor column indexes Unicode code points within the current line,
// never bytes, so edits around multi-byte characters are always safe.
// Column lineLen is a valid position and means "after the last character".
type Buffer struct {
	lines []string

	Row   int
	Col   int
	Dirty bool
}

// NewBuffer creates a buffer holding the given content with the cursor at
// the start of the document.
func NewBuffer(content string) *Buffer {
	return &Buffer{lines: strings.Split(content, "\n")}
}

// SetContent replaces the buffer content, resets the cursor to the start
// of the document, and clears the dirty flag. Used when opening an entry
// and when discarding unsaved changes.
func (b *Buffer) SetContent(content string) {
	b.lines = strings.Split(content, "\n")
	b.Row, b.Col = 0, 0
	b.Dirty = false
}

// Content returns the buffer joined back into a single string.
func (b *Buffer) Content() string {
	return strings.Join(b.lines, "\n")
}

// Lines returns the buffer's logical lines.
func (b *Buffer) Lines() []string { return b.lines }

// LineCount returns the number of logical lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the logical line at index i, or "" when out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

func (b *Buffer) lineRunes(i int) []rune {
	return []rune(b.lines[i])
}

// InsertRune inserts r at the cursor and advances the cursor past it.
func (b *Buffer) InsertRune(r rune) {
	rs := b.lineRunes(b.Row)
	rs = append(rs[:b.Col], append([]rune{r}, rs[b.Col:]...)...)
	b.lines[b.Row] = string(rs)
	b.Col++
	b.Dirty = true
}

// InsertNewline splits the current line at the cursor. The left part stays
// on the current row, the right part becomes a new line below it, and the
// cursor moves to the start of that new line.
func (b *Buffer) InsertNewline() {
	rs := b.lineRunes(b.Row)
	left, right := string(rs[:b.Col]), string(rs[b.Col:])
	b.lines[b.Row] = left
	rest := append([]string{right}, b.lines[b.Row+1:]...)
	b.lines = append(b.lines[:b.Row+1], rest...)
	b.Row++
	b.Col = 0
	b.Dirty = true
}

// Backspace deletes the character before the cursor. At the start of a
// line it merges the line into the previous one, placing the cursor at
// the join point. At the start of the document it does nothing.
func (b *Buffer) Backspace() {
	switch {
	case b.Col > 0:
		rs := b.lineRunes(b.Row)
		rs = append(rs[:b.Col-1], rs[b.Col:]...)
		b.lines[b.Row] = string(rs)
		b.Col--
		b.Dirty = true
	case b.Row > 0:
		join := len(b.lineRunes(b.Row - 1))
		b.lines[b.Row-1] += b.lines[b.Row]
		b.lines = append(b.lines[:b.Row], b.lines[b.Row+1:]...)
		b.Row--
		b.Col = join
		b.Dirty = true
	}
}

// Delete removes the character at the cursor, or merges the next line
// into the current one when the cursor sits at the end of a line. The
// cursor does not move.
func (b *Buffer) Delete() {
	rs := b.lineRunes(b.Row)
	switch {
	case b.Col < len(rs):
		rs = append(rs[:b.Col], rs[b.Col+1:]...)
		b.lines[b.Row] = string(rs)
		b.Dirty = true
	case b.Row+1 < len(b.lines):
		b.lines[b.Row] += b.lines[b.Row+1]
		b.lines = append(b.lines[:b.Row+1], b.lines[b.Row+2:]...)
		b.Dirty = true
	}
}

// MoveLeft moves the cursor one character left, wrapping to the end of
// the previous line at a line start.
func (b *Buffer) MoveLeft() {
	if b.Col > 0 {
		b.Col--
	} else if b.Row > 0 {
		b.Row--
		b.Col = len(b.lineRunes(b.Row))
	}
}

// MoveRight moves the cursor one character right, wrapping to the start
// of the next line at a line end.
func (b *Buffer) MoveRight() {
	if b.Col < len(b.lineRunes(b.Row)) {
		b.Col++
	} else if b.Row+1 < len(b.lines) {
		b.Row++
		b.Col = 0
	}
}

// MoveUp moves to the previous line, clamping the column to its length.
func (b *Buffer) MoveUp() {
	if b.Row == 0 {
		return
	}
	b.Row--
	b.clampCol()
}

// MoveDown moves to the next line, clamping the column to its length.
func (b *Buffer) MoveDown() {
	if b.Row+1 >= len(b.lines) {
		return
	}
	b.Row++
	b.clampCol()
}

// MoveToEnd places the cursor after the last character of the last line.
func (b *Buffer) MoveToEnd() {
	b.Row = len(b.lines) - 1
	b.Col = len(b.lineRunes(b.Row))
}

func (b *Buffer) clampCol() {
	if n := len(b.lineRunes(b.Row)); b.Col > n {
		b.Col = n
	}
}
