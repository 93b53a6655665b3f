package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree node styles
	NodeYear = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6")) // Violet

	NodeMonth = lipgloss.NewStyle().
			Foreground(Secondary)

	NodeDay = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▾ "
	TreeCollapsed = "▸ "
	TreeLeaf      = "  "

	// Panel borders; the focused panel gets the primary color.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted)

	PanelFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary)

	// Editor
	Gutter = lipgloss.NewStyle().
		Foreground(Muted)

	CursorCell = lipgloss.NewStyle().
			Reverse(true)

	DirtyMark = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Markdown display
	MDHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	MDCode = lipgloss.NewStyle().
		Foreground(Secondary)

	MDBullet = lipgloss.NewStyle()

	// Scrollbar
	ScrollThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollTrack = lipgloss.NewStyle().Foreground(Muted)

	// Prompts
	PromptBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputText = lipgloss.NewStyle().
			Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Success = lipgloss.NewStyle().
		Foreground(Secondary)

	ChoiceSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	ChoiceIdle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Status bar and help line
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
