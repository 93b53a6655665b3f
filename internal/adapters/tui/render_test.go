package tui

import (
	"strings"
	"testing"
)

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{name: "fits", line: "hello", width: 10, want: []string{"hello"}},
		{name: "exact", line: "hello", width: 5, want: []string{"hello"}},
		{name: "wraps", line: "hello world", width: 4, want: []string{"hell", "o wo", "rld"}},
		{name: "empty line", line: "", width: 4, want: []string{""}},
		{name: "zero width unwrapped", line: "hello", width: 0, want: []string{"hello"}},
		{name: "multibyte", line: "日本語のテキスト", width: 3, want: []string{"日本語", "のテキ", "スト"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapLine(tt.line, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapLine = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Concatenating the chunks must reproduce the original line, and wrapping
// the same line at the same width must be deterministic.
func TestWrapLine_RoundTrip(t *testing.T) {
	lines := []string{"", "short", strings.Repeat("x", 100), "混ぜた text with 日本語 characters"}
	for _, line := range lines {
		for _, width := range []int{1, 3, 7, 80} {
			a := WrapLine(line, width)
			b := WrapLine(line, width)
			if strings.Join(a, "") != line {
				t.Errorf("chunks of %q at %d do not rejoin", line, width)
			}
			if strings.Join(a, "\x00") != strings.Join(b, "\x00") {
				t.Errorf("wrap of %q at %d is not deterministic", line, width)
			}
			if len(a) != ChunkCount(line, width) {
				t.Errorf("ChunkCount(%q, %d) = %d, want %d", line, width, ChunkCount(line, width), len(a))
			}
		}
	}
}

func TestCursorVisualRow(t *testing.T) {
	lines := []string{
		strings.Repeat("a", 10), // 3 chunks at width 4
		"bb",                    // 1 chunk
		strings.Repeat("c", 8),  // 2 chunks
	}

	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{name: "document start", row: 0, col: 0, want: 0},
		{name: "second chunk of first line", row: 0, col: 5, want: 1},
		{name: "second line", row: 1, col: 0, want: 3},
		{name: "third line", row: 2, col: 0, want: 4},
		{name: "second chunk of third line", row: 2, col: 6, want: 5},
		{name: "end of exactly full line", row: 2, col: 8, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CursorVisualRow(lines, 4, tt.row, tt.col); got != tt.want {
				t.Errorf("CursorVisualRow = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		name                  string
		scroll, total, height int
		want                  int
	}{
		{name: "content fits", scroll: 5, total: 3, height: 10, want: 0},
		{name: "within bounds", scroll: 5, total: 100, height: 10, want: 5},
		{name: "past last page", scroll: 99, total: 100, height: 10, want: 90},
		{name: "negative", scroll: -3, total: 100, height: 10, want: 0},
		{name: "no content", scroll: 4, total: 0, height: 10, want: 0},
		{name: "zero height", scroll: 4, total: 10, height: 0, want: 4},
		{name: "equal sizes", scroll: 7, total: 10, height: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScroll(tt.scroll, tt.total, tt.height); got != tt.want {
				t.Errorf("ClampScroll(%d,%d,%d) = %d, want %d", tt.scroll, tt.total, tt.height, got, tt.want)
			}
		})
	}
}

// Scroll bound property: viewScroll+height never overshoots the content,
// and short content pins the scroll to zero.
func TestClampScroll_Bounds(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for height := 1; height <= 15; height++ {
			for scroll := -2; scroll <= total+2; scroll++ {
				got := ClampScroll(scroll, total, height)
				if total <= height && got != 0 {
					t.Fatalf("total=%d height=%d scroll=%d: got %d, want 0", total, height, scroll, got)
				}
				if total >= height && got+height > total {
					t.Fatalf("total=%d height=%d scroll=%d: %d+height overshoots", total, height, scroll, got)
				}
			}
		}
	}
}

func TestFollowCursor(t *testing.T) {
	tests := []struct {
		name                      string
		scroll, cursorRow, height int
		want                      int
	}{
		{name: "visible", scroll: 5, cursorRow: 8, height: 10, want: 5},
		{name: "above viewport", scroll: 5, cursorRow: 2, height: 10, want: 2},
		{name: "below viewport", scroll: 5, cursorRow: 20, height: 10, want: 11},
		{name: "exactly past bottom", scroll: 0, cursorRow: 10, height: 10, want: 1},
		{name: "zero height", scroll: 5, cursorRow: 0, height: 0, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FollowCursor(tt.scroll, tt.cursorRow, tt.height); got != tt.want {
				t.Errorf("FollowCursor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScrollbarGeometry(t *testing.T) {
	if _, _, _, ok := ScrollbarGeometry(5, 10, 0); ok {
		t.Error("no scrollbar when content fits")
	}

	track, thumb, top, ok := ScrollbarGeometry(100, 20, 0)
	if !ok {
		t.Fatal("scrollbar expected")
	}
	if track != 18 {
		t.Errorf("track = %d, want 18 (height minus caps)", track)
	}
	if thumb != 18*18/100 {
		t.Errorf("thumb = %d", thumb)
	}
	if top != 0 {
		t.Errorf("thumb top = %d at scroll 0", top)
	}

	// At the bottom of the scroll range the thumb touches the track end.
	_, thumb, top, _ = ScrollbarGeometry(100, 20, 80)
	if top+thumb != 18 {
		t.Errorf("thumb at %d+%d, want flush with track end 18", top, thumb)
	}

	// Tiny viewport: no caps, thumb at least one cell.
	track, thumb, _, ok = ScrollbarGeometry(1000, 2, 0)
	if !ok || track != 2 || thumb != 1 {
		t.Errorf("track=%d thumb=%d ok=%v, want 2,1,true", track, thumb, ok)
	}
}

func TestRenderScrollbar_RowCount(t *testing.T) {
	if rows := RenderScrollbar(100, 20, 0); len(rows) != 20 {
		t.Errorf("scrollbar rows = %d, want 20", len(rows))
	}
	if rows := RenderScrollbar(5, 20, 0); rows != nil {
		t.Errorf("scrollbar drawn for fitting content")
	}
}
