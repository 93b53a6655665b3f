package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybook/internal/domain"
	"daybook/internal/ports"
)

// Mode is the session's modal state.
type Mode int

const (
	ModePreview Mode = iota
	ModeEdit
	ModeDatePrompt
	ModeSavePrompt
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "EDIT"
	case ModeDatePrompt:
		return "NEW"
	case ModeSavePrompt:
		return "SAVE"
	default:
		return "PREVIEW"
	}
}

// Focus names the panel receiving navigation keys in Preview mode.
type Focus int

const (
	FocusTree Focus = iota
	FocusContent
)

const treePaneWidth = 32

// Session is the top-level TUI model: the navigation tree, the text
// buffer of the open entry, the viewport state, and the modal state
// machine dispatching keys. One key event is fully processed (including
// any file I/O) before the next frame renders, so no locking is needed.
type Session struct {
	repo  ports.Journal
	today func() string

	tree     *domain.Tree
	rows     []domain.Row
	selected int // index into rows, -1 when the list is empty

	buf      *domain.Buffer
	openFile string // filename of the open entry, "" when none

	mode       Mode
	focus      Focus
	viewScroll int // first visible display line of the content pane
	treeScroll int

	dateInput  string
	dateError  string
	saveChoice int // 0 Yes, 1 No, 2 Cancel

	width  int
	height int

	status    string
	statusErr bool
}

// NewSession creates the session over a journal repository.
func NewSession(repo ports.Journal) *Session {
	return &Session{
		repo:     repo,
		today:    domain.Today,
		buf:      domain.NewBuffer(""),
		selected: -1,
	}
}

// Init loads the entry list.
func (s *Session) Init() tea.Cmd {
	return s.loadEntries
}

type entriesLoadedMsg struct{ files []string }

type errMsg struct{ err error }

func (s *Session) loadEntries() tea.Msg {
	files, err := s.repo.ListEntries()
	if err != nil {
		return errMsg{err}
	}
	return entriesLoadedMsg{files}
}

// Update dispatches messages to the handler of the current mode.
func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		// Geometry changed: recompute wrap-dependent state from scratch.
		if s.mode == ModeEdit {
			s.followEditCursor()
		}
		return s, nil

	case entriesLoadedMsg:
		s.refreshTree(msg.files)
		return s, nil

	case errMsg:
		s.setError(msg.err)
		return s, nil

	case tea.KeyMsg:
		s.status = ""
		s.statusErr = false
		switch s.mode {
		case ModeEdit:
			return s.updateEdit(msg)
		case ModeDatePrompt:
			return s.updateDatePrompt(msg)
		case ModeSavePrompt:
			return s.updateSavePrompt(msg)
		default:
			return s.updatePreview(msg)
		}
	}
	return s, nil
}

func (s *Session) setError(err error) {
	s.status = err.Error()
	s.statusErr = true
}

// refreshTree rebuilds the tree from a file list, reflattens, and opens
// the most recent entry when one exists.
func (s *Session) refreshTree(files []string) {
	s.tree = domain.BuildTree(files)
	s.rows = s.tree.Flatten()
	s.clampSelection()
	if latest := s.tree.Latest(); latest != "" {
		s.selectRowByFilename(latest)
		s.openEntry(latest)
	}
}

// clampSelection restores the selection invariant after the row list
// changes: nil selection iff the list is empty, otherwise in range.
func (s *Session) clampSelection() {
	if len(s.rows) == 0 {
		s.selected = -1
		return
	}
	if s.selected < 0 {
		s.selected = 0
	}
	if s.selected >= len(s.rows) {
		s.selected = len(s.rows) - 1
	}
	s.scrollTreeToSelection()
}

// moveSelection moves the tree selection by delta, clamped into range.
// Landing on a Day row opens its entry: navigating to a day previews it.
func (s *Session) moveSelection(delta int) {
	if len(s.rows) == 0 {
		return
	}
	next := s.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(s.rows) {
		next = len(s.rows) - 1
	}
	s.selected = next
	s.scrollTreeToSelection()

	node := s.tree.Node(s.rows[s.selected].ID)
	if node.Kind == domain.KindDay {
		s.openEntry(node.Filename)
	}
}

// selectRowByFilename selects the visible Day row carrying the filename.
func (s *Session) selectRowByFilename(name string) bool {
	for i, row := range s.rows {
		node := s.tree.Node(row.ID)
		if node.Kind == domain.KindDay && node.Filename == name {
			s.selected = i
			s.scrollTreeToSelection()
			return true
		}
	}
	return false
}

func (s *Session) scrollTreeToSelection() {
	h := s.paneHeight()
	if h <= 0 {
		s.treeScroll = 0
		return
	}
	s.treeScroll = FollowCursor(s.treeScroll, s.selected, h)
	if s.treeScroll < 0 {
		s.treeScroll = 0
	}
}

// openEntry reads an entry from disk into the buffer. A read failure is
// surfaced on the status bar and leaves the session state unchanged.
func (s *Session) openEntry(name string) bool {
	content, err := s.repo.Read(name)
	if err != nil {
		s.setError(err)
		return false
	}
	s.buf.SetContent(content)
	s.openFile = name
	s.viewScroll = 0
	return true
}

// save writes the buffer to its entry file. The dirty flag is cleared
// only on success.
func (s *Session) save() error {
	if s.openFile == "" {
		return nil
	}
	if err := s.repo.Write(s.openFile, s.buf.Content()); err != nil {
		s.setError(err)
		return err
	}
	s.buf.Dirty = false
	s.status = fmt.Sprintf("Saved %s", s.openFile)
	return nil
}

// updatePreview handles keys in Preview mode.
func (s *Session) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PreviewKeys.Quit):
		return s, tea.Quit

	case key.Matches(msg, PreviewKeys.New):
		s.mode = ModeDatePrompt
		s.dateInput = s.today()
		s.dateError = ""
		return s, nil

	case key.Matches(msg, PreviewKeys.Edit):
		if s.openFile != "" {
			s.mode = ModeEdit
			s.buf.MoveToEnd()
			s.followEditCursor()
		}
		return s, nil

	case key.Matches(msg, PreviewKeys.Focus):
		if s.focus == FocusTree {
			s.focus = FocusContent
		} else {
			s.focus = FocusTree
		}
		return s, nil

	case key.Matches(msg, PreviewKeys.Up):
		if s.focus == FocusTree {
			s.moveSelection(-1)
		} else if s.viewScroll > 0 {
			s.viewScroll--
		}
		return s, nil

	case key.Matches(msg, PreviewKeys.Down):
		if s.focus == FocusTree {
			s.moveSelection(1)
		} else {
			s.viewScroll = ClampScroll(s.viewScroll+1, s.contentLineCount(), s.paneHeight())
		}
		return s, nil

	case key.Matches(msg, PreviewKeys.Collapse):
		if s.toggleSelected(false) {
			s.reflatten()
		}
		return s, nil

	case key.Matches(msg, PreviewKeys.Expand):
		if s.toggleSelected(true) {
			s.reflatten()
		}
		return s, nil

	case key.Matches(msg, PreviewKeys.Open):
		if s.selected >= 0 && s.selected < len(s.rows) {
			node := s.tree.Node(s.rows[s.selected].ID)
			if node.Kind == domain.KindDay && s.openEntry(node.Filename) {
				s.focus = FocusContent
			}
		}
		return s, nil

	case key.Matches(msg, PreviewKeys.Copy):
		if s.openFile != "" {
			if err := clipboard.WriteAll(s.buf.Content()); err != nil {
				s.setError(err)
			} else {
				s.status = fmt.Sprintf("Copied %s to clipboard", s.openFile)
			}
		}
		return s, nil
	}
	return s, nil
}

func (s *Session) toggleSelected(expand bool) bool {
	if s.selected < 0 || s.selected >= len(s.rows) {
		return false
	}
	return s.tree.ToggleExpand(s.rows[s.selected].Path, expand)
}

func (s *Session) reflatten() {
	s.rows = s.tree.Flatten()
	s.clampSelection()
}

// updateEdit handles keys in Edit mode. Everything that is not a binding
// or a movement key inserts into the buffer.
func (s *Session) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, EditKeys.Save):
		s.save()
		return s, nil

	case key.Matches(msg, EditKeys.Back):
		if s.buf.Dirty {
			s.mode = ModeSavePrompt
			s.saveChoice = 0
		} else {
			s.mode = ModePreview
		}
		return s, nil
	}

	switch msg.Type {
	case tea.KeyUp:
		s.buf.MoveUp()
	case tea.KeyDown:
		s.buf.MoveDown()
	case tea.KeyLeft:
		s.buf.MoveLeft()
	case tea.KeyRight:
		s.buf.MoveRight()
	case tea.KeyBackspace:
		s.buf.Backspace()
	case tea.KeyDelete:
		s.buf.Delete()
	case tea.KeyEnter:
		s.buf.InsertNewline()
	case tea.KeyTab:
		s.buf.InsertRune(' ')
		s.buf.InsertRune(' ')
	case tea.KeySpace:
		s.buf.InsertRune(' ')
	case tea.KeyRunes:
		if msg.Alt {
			break
		}
		for _, r := range msg.Runes {
			s.buf.InsertRune(r)
		}
	}
	s.followEditCursor()
	return s, nil
}

// followEditCursor recomputes the wrapped position of the cursor and
// adjusts the scroll offset so it stays visible.
func (s *Session) followEditCursor() {
	width := s.editTextWidth()
	lines := s.buf.Lines()
	total := 0
	for _, ln := range lines {
		total += ChunkCount(ln, width)
	}
	vrow := CursorVisualRow(lines, width, s.buf.Row, s.buf.Col)
	s.viewScroll = FollowCursor(ClampScroll(s.viewScroll, total, s.paneHeight()), vrow, s.paneHeight())
}

// updateDatePrompt handles keys in the new-entry date prompt.
func (s *Session) updateDatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PromptKeys.Cancel):
		s.mode = ModePreview
		return s, nil
	case key.Matches(msg, PromptKeys.Confirm):
		s.submitDate()
		return s, nil
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(s.dateInput) > 0 {
			s.dateInput = s.dateInput[:len(s.dateInput)-1]
		}
		s.dateError = ""
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(s.dateInput) < 8 {
				s.dateInput += string(r)
			}
		}
	}
	return s, nil
}

// submitDate validates the typed date, creates the entry if it does not
// exist, reveals it in the tree, and drops into Edit mode.
func (s *Session) submitDate() {
	if _, err := domain.ParseEntryDate(s.dateInput); err != nil {
		if errors.Is(err, domain.ErrDateFormat) {
			s.dateError = "Enter exactly 8 digits (YYYYMMDD)."
		} else {
			s.dateError = "That is not a real calendar date."
		}
		return
	}

	name := domain.EntryFilename(s.dateInput)
	if err := s.repo.Create(name); err != nil {
		s.dateError = err.Error()
		return
	}

	files, err := s.repo.ListEntries()
	if err != nil {
		s.setError(err)
		s.mode = ModePreview
		return
	}
	s.tree = domain.BuildTree(files)
	s.tree.ExpandTo(name)
	s.rows = s.tree.Flatten()
	s.clampSelection()
	s.selectRowByFilename(name)

	if !s.openEntry(name) {
		s.mode = ModePreview
		return
	}
	s.dateError = ""
	s.mode = ModeEdit
	s.buf.MoveToEnd()
	s.followEditCursor()
}

// updateSavePrompt handles the Yes/No/Cancel prompt shown when leaving
// Edit mode with unsaved changes.
func (s *Session) updateSavePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, PromptKeys.Left):
		if s.saveChoice > 0 {
			s.saveChoice--
		}
	case key.Matches(msg, PromptKeys.Right):
		if s.saveChoice < 2 {
			s.saveChoice++
		}
	case key.Matches(msg, PromptKeys.Cancel):
		s.mode = ModeEdit
	case key.Matches(msg, PromptKeys.Confirm):
		switch s.saveChoice {
		case 0: // save and leave
			if s.save() == nil {
				s.mode = ModePreview
			} else {
				s.mode = ModeEdit
			}
		case 1: // discard: reload the on-disk content
			content, err := s.repo.Read(s.openFile)
			if err != nil {
				s.setError(err)
				s.mode = ModeEdit
				return s, nil
			}
			s.buf.SetContent(content)
			s.mode = ModePreview
		case 2: // cancel: keep editing
			s.mode = ModeEdit
		}
	}
	return s, nil
}
