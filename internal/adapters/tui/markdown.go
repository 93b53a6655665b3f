package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daybook/internal/adapters/tui/styles"
)

// docLineKind classifies a logical display line produced by the markdown
// block pass.
type docLineKind int

const (
	docParagraph docLineKind = iota
	docHeading
	docCode
	docBullet
	docBlank
)

// docLine is one logical display line: raw text plus the block kind that
// decides its styling. Styling is applied after wrapping so that wrap
// arithmetic stays a pure function of the character count.
type docLine struct {
	text string
	kind docLineKind
}

// renderDoc runs the display-only markdown block pass: a single streaming
// scan over heading, paragraph, fenced-code and list-item constructs. It
// emits one logical line per source line, inserts a blank separator after
// headings and code blocks, and prefixes list items with a bullet glyph.
// The transform is not invertible and does not try to be.
func renderDoc(content string) []docLine {
	var out []docLine
	inCode := false
	for _, raw := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(trimmed, "```"):
			if inCode {
				out = append(out, docLine{kind: docBlank})
			}
			inCode = !inCode
		case inCode:
			out = append(out, docLine{text: raw, kind: docCode})
		case strings.HasPrefix(trimmed, "#"):
			out = append(out, docLine{text: trimmed, kind: docHeading}, docLine{kind: docBlank})
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			out = append(out, docLine{text: "• " + trimmed[2:], kind: docBullet})
		default:
			out = append(out, docLine{text: raw, kind: docParagraph})
		}
	}
	return out
}

// RenderDoc runs the block pass and styles each line, for callers outside
// the session (e.g. daybook-cli show --rendered). lipgloss drops the ANSI
// sequences itself when stdout is not a terminal.
func RenderDoc(content string) string {
	var b strings.Builder
	for i, dl := range renderDoc(content) {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch dl.kind {
		case docParagraph, docBullet:
			b.WriteString(styleInline(dl.text))
		default:
			b.WriteString(styleFor(dl.kind).Render(dl.text))
		}
	}
	return b.String()
}

// styleFor returns the lipgloss style for a line kind.
func styleFor(kind docLineKind) lipgloss.Style {
	switch kind {
	case docHeading:
		return styles.MDHeading
	case docCode:
		return styles.MDCode
	case docBullet:
		return styles.MDBullet
	default:
		return lipgloss.NewStyle()
	}
}

// styleInline renders `code` spans inside an already-wrapped chunk. Spans
// split across a wrap boundary keep their literal backtick; only complete
// pairs within the chunk are styled.
func styleInline(chunk string) string {
	if !strings.Contains(chunk, "`") {
		return chunk
	}
	var b strings.Builder
	rest := chunk
	for {
		open := strings.IndexByte(rest, '`')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		close := strings.IndexByte(rest[open+1:], '`')
		if close < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		b.WriteString(styles.MDCode.Render(rest[open+1 : open+1+close]))
		rest = rest[open+close+2:]
	}
	return b.String()
}
