package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"daybook/internal/adapters/tui/styles"
	"daybook/internal/domain"
)

// View renders the frame for the current mode.
func (s *Session) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}
	switch s.mode {
	case ModeEdit:
		return s.viewEdit()
	case ModeDatePrompt:
		return s.viewDatePrompt()
	case ModeSavePrompt:
		return s.viewSavePrompt()
	default:
		return s.viewPreview()
	}
}

// Geometry. Every frame is title + body + status bar + help line; panels
// in the body carry a one-cell border on each side.

func (s *Session) bodyHeight() int {
	if s.height < 3 {
		return 0
	}
	return s.height - 3
}

// paneHeight is the number of content rows inside a bordered panel.
func (s *Session) paneHeight() int {
	if h := s.bodyHeight() - 2; h > 0 {
		return h
	}
	return 0
}

// contentTextWidth is the wrap width of the Preview content pane: the
// pane interior minus one column reserved for the scrollbar.
func (s *Session) contentTextWidth() int {
	if w := s.width - treePaneWidth - 2 - 1; w > 0 {
		return w
	}
	return 0
}

func (s *Session) gutterWidth() int {
	return len(fmt.Sprint(s.buf.LineCount())) + 1
}

// editTextWidth is the wrap width of the Edit pane: the panel interior
// minus the line-number gutter and the scrollbar column.
func (s *Session) editTextWidth() int {
	if w := s.width - 2 - s.gutterWidth() - 1; w > 0 {
		return w
	}
	return 0
}

// --- Preview ---

func (s *Session) viewPreview() string {
	treePanel := s.panelStyle(FocusTree).Render(s.renderTreePane())
	contentPanel := s.panelStyle(FocusContent).Render(s.renderContentPane())
	body := lipgloss.JoinHorizontal(lipgloss.Top, treePanel, contentPanel)

	return s.frame(body, PreviewKeys.Up, PreviewKeys.Collapse, PreviewKeys.Open,
		PreviewKeys.New, PreviewKeys.Edit, PreviewKeys.Focus, PreviewKeys.Quit)
}

func (s *Session) panelStyle(area Focus) lipgloss.Style {
	style := styles.Panel
	if s.focus == area {
		style = styles.PanelFocused
	}
	w := treePaneWidth - 2
	if area == FocusContent {
		w = s.width - treePaneWidth - 2
	}
	if w < 0 {
		w = 0
	}
	return style.Width(w).Height(s.paneHeight())
}

func (s *Session) renderTreePane() string {
	if s.tree == nil || s.tree.Empty() {
		return styles.MutedText.Render("no entries yet — press n")
	}
	var lines []string
	for i, row := range s.rows {
		lines = append(lines, s.renderTreeRow(row, i == s.selected))
	}
	window, _ := visibleWindow(lines, s.treeScroll, s.paneHeight())
	return strings.Join(window, "\n")
}

func (s *Session) renderTreeRow(row domain.Row, selected bool) string {
	node := s.tree.Node(row.ID)

	connector := "├─"
	if s.tree.IsLastChild(row.Path) {
		connector = "└─"
	}

	glyph := styles.TreeLeaf
	if node.Kind != domain.KindDay {
		if node.Expanded {
			glyph = styles.TreeExpanded
		} else {
			glyph = styles.TreeCollapsed
		}
	}

	var style lipgloss.Style
	switch node.Kind {
	case domain.KindYear:
		style = styles.NodeYear
	case domain.KindMonth:
		style = styles.NodeMonth
	default:
		style = styles.NodeDay
	}

	label := node.Label
	if selected {
		style = styles.NodeSelected
	}

	indent := strings.Repeat("  ", row.Depth)
	return styles.TreeBranch.Render(indent+connector+" ") + style.Render(glyph+label)
}

func (s *Session) renderContentPane() string {
	if s.openFile == "" {
		return styles.MutedText.Render("no entry open")
	}

	width := s.contentTextWidth()
	doc := renderDoc(s.buf.Content())

	type chunkLine struct {
		text string
		kind docLineKind
	}
	var wrapped []chunkLine
	for _, dl := range doc {
		for _, chunk := range WrapLine(dl.text, width) {
			wrapped = append(wrapped, chunkLine{chunk, dl.kind})
		}
	}

	height := s.paneHeight()
	scroll := ClampScroll(s.viewScroll, len(wrapped), height)
	s.viewScroll = scroll
	end := scroll + height
	if end > len(wrapped) {
		end = len(wrapped)
	}

	bar := RenderScrollbar(len(wrapped), height, scroll)

	var b strings.Builder
	for i := scroll; i < end; i++ {
		cl := wrapped[i]
		text := cl.text
		pad := width - len([]rune(text))
		switch cl.kind {
		case docParagraph, docBullet:
			text = styleInline(text)
		default:
			text = styleFor(cl.kind).Render(text)
		}
		b.WriteString(text)
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		if bar != nil {
			b.WriteString(bar[i-scroll])
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *Session) contentLineCount() int {
	if s.openFile == "" {
		return 0
	}
	width := s.contentTextWidth()
	total := 0
	for _, dl := range renderDoc(s.buf.Content()) {
		total += ChunkCount(dl.text, width)
	}
	return total
}

// --- Edit ---

func (s *Session) viewEdit() string {
	display, total := s.editDisplay()
	height := s.paneHeight()
	scroll := ClampScroll(s.viewScroll, total, height)
	end := scroll + height
	if end > len(display) {
		end = len(display)
	}

	bar := RenderScrollbar(total, height, scroll)

	var lines []string
	for i := scroll; i < end; i++ {
		ln := display[i]
		if bar != nil {
			ln += bar[i-scroll]
		}
		lines = append(lines, ln)
	}

	panel := styles.PanelFocused.Width(s.width - 2).Height(height).
		Render(strings.Join(lines, "\n"))
	return s.frame(panel, EditKeys.Save, EditKeys.Back)
}

// editDisplay produces the wrapped, gutter-annotated display lines of the
// buffer, with the cursor cell rendered in reverse video.
func (s *Session) editDisplay() ([]string, int) {
	width := s.editTextWidth()
	gw := s.gutterWidth()

	var display []string
	for i, ln := range s.buf.Lines() {
		chunks := WrapLine(ln, width)
		cursorChunk, cursorOff := -1, 0
		if i == s.buf.Row {
			if width > 0 {
				cursorChunk = s.buf.Col / width
				cursorOff = s.buf.Col % width
			} else {
				cursorChunk = 0
				cursorOff = s.buf.Col
			}
			// Cursor sits just past a line that fills its last chunk
			// exactly: give it an empty continuation row.
			if cursorChunk == len(chunks) && cursorChunk > 0 {
				chunks = append(chunks, "")
			}
		}
		for ci, chunk := range chunks {
			gutter := strings.Repeat(" ", gw)
			if ci == 0 {
				gutter = fmt.Sprintf("%*d ", gw-1, i+1)
			}
			body := padRight(chunk, width)
			if ci == cursorChunk {
				body = renderCursorCell(chunk, cursorOff, width)
			}
			display = append(display, styles.Gutter.Render(gutter)+body)
		}
	}
	return display, len(display)
}

// renderCursorCell renders a chunk with the cell at off shown in reverse
// video, padded to the wrap width.
func renderCursorCell(chunk string, off, width int) string {
	rs := []rune(chunk)
	var pre, cell, post string
	if off < len(rs) {
		pre = string(rs[:off])
		cell = string(rs[off])
		post = string(rs[off+1:])
	} else {
		pre = chunk
		cell = " "
	}
	visible := len(rs)
	if off >= visible {
		visible = off + 1
	}
	pad := ""
	if width > visible {
		pad = strings.Repeat(" ", width-visible)
	}
	return pre + styles.CursorCell.Render(cell) + post + pad
}

// --- Prompts ---

func (s *Session) viewDatePrompt() string {
	var b strings.Builder
	b.WriteString(styles.InputLabel.Render("New entry date (YYYYMMDD)"))
	b.WriteString("\n\n")
	b.WriteString(styles.InputText.Render(s.dateInput))
	b.WriteString(styles.CursorCell.Render(" "))
	if s.dateError != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ErrorMsg.Render(s.dateError))
	}
	box := styles.PromptBox.Render(b.String())
	body := lipgloss.Place(s.width, s.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
	return s.frame(body, PromptKeys.Confirm, PromptKeys.Cancel)
}

func (s *Session) viewSavePrompt() string {
	choices := []string{"Yes", "No", "Cancel"}
	var rendered []string
	for i, c := range choices {
		if i == s.saveChoice {
			rendered = append(rendered, styles.ChoiceSelected.Render(c))
		} else {
			rendered = append(rendered, styles.ChoiceIdle.Render(c))
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Save changes to %s?", s.openFile))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(rendered, " "))
	box := styles.PromptBox.Render(b.String())
	body := lipgloss.Place(s.width, s.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
	return s.frame(body, PromptKeys.Left, PromptKeys.Confirm, PromptKeys.Cancel)
}

// --- Chrome shared by every mode ---

func (s *Session) frame(body string, bindings ...key.Binding) string {
	title := styles.Title.Render("daybook")
	return strings.Join([]string{title, body, s.statusLine(), renderHelpLine(bindings...)}, "\n")
}

func (s *Session) statusLine() string {
	parts := []string{s.mode.String()}
	if s.openFile != "" {
		if date, ok := domain.DateFromFilename(s.openFile); ok {
			parts = append(parts, domain.DayLabel(date))
		}
	}
	if s.buf.Dirty {
		parts = append(parts, styles.DirtyMark.Render("*"))
	}
	left := strings.Join(parts, "  ")

	if s.status != "" {
		msg := s.status
		if s.statusErr {
			msg = styles.ErrorMsg.Render(msg)
		} else {
			msg = styles.Success.Render(msg)
		}
		left += "  " + msg
	}
	return styles.StatusBar.Width(s.width).Render(left)
}

func renderKeyHelp(b key.Binding) string {
	help := b.Help()
	if help.Key == "" {
		return ""
	}
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

func renderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if h := renderKeyHelp(b); h != "" {
			parts = append(parts, h)
		}
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}
