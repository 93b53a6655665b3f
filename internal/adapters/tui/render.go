package tui

import (
	"strings"

	"daybook/internal/adapters/tui/styles"
)

// WrapLine splits a logical line into successive chunks of at most width
// characters. Indices are code points, never bytes, so a chunk boundary
// cannot split a multi-byte character. A width of zero or less renders
// the line unwrapped as a single chunk.
func WrapLine(line string, width int) []string {
	if width <= 0 {
		return []string{line}
	}
	rs := []rune(line)
	if len(rs) <= width {
		return []string{line}
	}
	var chunks []string
	for start := 0; start < len(rs); start += width {
		end := start + width
		if end > len(rs) {
			end = len(rs)
		}
		chunks = append(chunks, string(rs[start:end]))
	}
	return chunks
}

// ChunkCount returns the number of wrapped chunks a logical line produces
// at the given width, at least 1.
func ChunkCount(line string, width int) int {
	if width <= 0 {
		return 1
	}
	n := len([]rune(line))
	if n <= width {
		return 1
	}
	return (n + width - 1) / width
}

// CursorVisualRow computes the display row of the cursor after wrapping:
// the chunks of every buffer line strictly above the cursor's line, plus
// the whole width-sized chunks consumed before the cursor's column on its
// own line.
func CursorVisualRow(lines []string, width, row, col int) int {
	visual := 0
	for i := 0; i < row && i < len(lines); i++ {
		visual += ChunkCount(lines[i], width)
	}
	if width > 0 {
		visual += col / width
	}
	return visual
}

// ClampScroll bounds a scroll offset so it never exceeds the content and,
// when the content overflows the viewport, the last page stays fully
// populated. All arithmetic saturates, so degenerate geometry renders an
// empty frame instead of underflowing.
func ClampScroll(scroll, total, height int) int {
	if scroll < 0 {
		scroll = 0
	}
	if total <= 0 {
		return 0
	}
	if scroll > total-1 {
		scroll = total - 1
	}
	if total > height && height > 0 && scroll > total-height {
		scroll = total - height
	}
	if total <= height {
		return 0
	}
	return scroll
}

// FollowCursor adjusts a scroll offset so the cursor's visual row stays
// inside the viewport: scrolled up to the row when it is above, or
// advanced so the row becomes the last visible one when it is below.
func FollowCursor(scroll, cursorRow, height int) int {
	if height <= 0 {
		return scroll
	}
	if cursorRow < scroll {
		return cursorRow
	}
	if cursorRow >= scroll+height {
		return cursorRow - height + 1
	}
	return scroll
}

// ScrollbarGeometry computes the scrollbar track for a viewport. It
// reports ok=false when the content fits and no bar should be drawn.
// When height allows, one row at each end is reserved for the arrow caps.
func ScrollbarGeometry(total, height, scroll int) (track, thumb, top int, ok bool) {
	if total <= height || height <= 0 {
		return 0, 0, 0, false
	}
	track = height
	if height >= 3 {
		track = height - 2
	}
	thumb = track * track / total
	if thumb < 1 {
		thumb = 1
	}
	if thumb > track {
		thumb = track
	}
	denom := total - height
	if denom < 1 {
		denom = 1
	}
	top = scroll * (track - thumb) / denom
	return track, thumb, top, true
}

// RenderScrollbar renders one glyph per viewport row: arrow caps (when
// the viewport is at least three rows tall), a solid thumb, and a thin
// track elsewhere. The returned slice is empty when the content fits.
func RenderScrollbar(total, height, scroll int) []string {
	track, thumb, top, ok := ScrollbarGeometry(total, height, scroll)
	if !ok {
		return nil
	}
	out := make([]string, 0, height)
	withCaps := height >= 3
	if withCaps {
		out = append(out, styles.ScrollTrack.Render("▲"))
	}
	for i := 0; i < track; i++ {
		if i >= top && i < top+thumb {
			out = append(out, styles.ScrollThumb.Render("█"))
		} else {
			out = append(out, styles.ScrollTrack.Render("│"))
		}
	}
	if withCaps {
		out = append(out, styles.ScrollTrack.Render("▼"))
	}
	return out
}

// visibleWindow slices display lines to the viewport after clamping the
// scroll offset. It returns the clamped offset alongside the window.
func visibleWindow(lines []string, scroll, height int) ([]string, int) {
	scroll = ClampScroll(scroll, len(lines), height)
	if height <= 0 || scroll >= len(lines) {
		return nil, scroll
	}
	end := scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[scroll:end], scroll
}

// padRight pads s with spaces to exactly n characters, truncating by code
// point when it is longer.
func padRight(s string, n int) string {
	rs := []rune(s)
	if len(rs) >= n {
		return string(rs[:n])
	}
	return s + strings.Repeat(" ", n-len(rs))
}
