package tui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/envgrade/envgrade/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	sevCriticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sevWarningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sevInfoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// severityText returns plain text for severity (ANSI codes break table
// truncation).
func severityText(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "CRIT"
	case types.SevWarning:
		return "WARN"
	default:
		return "INFO"
	}
}

func severityStyled(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return sevCriticalStyle.Render("critical")
	case types.SevWarning:
		return sevWarningStyle.Render("warning")
	default:
		return sevInfoStyle.Render("info")
	}
}

type statusMsg string

// Model is the findings browser: a table of findings on top and a detail
// pane with the redacted source context below.
type Model struct {
	table    table.Model
	viewport viewport.Model
	result   *types.ScanResult
	source   string
	status   string
	// showOriginal switches the context pane from the redacted buffer to
	// the raw input.
	showOriginal bool
	ready        bool
	quitting     bool
	width        int
	height       int
}

// NewModel builds the browser for one scan result and its original input.
func NewModel(res *types.ScanResult, source string) Model {
	cols := []table.Column{
		{Title: "Sev", Width: 5},
		{Title: "Line", Width: 6},
		{Title: "Finding", Width: 34},
		{Title: "Match", Width: 30},
	}
	rows := make([]table.Row, 0, len(res.Findings))
	for _, f := range res.Findings {
		rows = append(rows, table.Row{
			severityText(f.Severity),
			fmt.Sprintf("%d", f.Line),
			f.Name,
			maskForTable(f.DisplayMatch()),
		})
	}
	t := table.New(table.WithColumns(cols), table.WithRows(rows), table.WithFocused(true))
	return Model{table: t, result: res, source: source}
}

func maskForTable(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(msg.Height/2 - 3)
		m.viewport = viewport.New(msg.Width-4, msg.Height-m.table.Height()-6)
		m.ready = true
	case statusMsg:
		m.status = string(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "c":
			return m, m.copyRedacted()
		case "o":
			m.showOriginal = !m.showOriginal
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	if m.ready {
		m.viewport.SetContent(m.detailContent())
	}
	return m, cmd
}

// copyRedacted puts the fully redacted buffer on the system clipboard.
func (m Model) copyRedacted() tea.Cmd {
	if err := clipboard.WriteAll(m.result.Redacted); err != nil {
		return func() tea.Msg { return statusMsg("Clipboard copy failed: " + err.Error()) }
	}
	return func() tea.Msg { return statusMsg("Copied redacted text to clipboard") }
}

func (m Model) selected() (types.Finding, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.result.Findings) {
		return types.Finding{}, false
	}
	return m.result.Findings[i], true
}

func (m Model) detailContent() string {
	f, ok := m.selected()
	if !ok {
		return "No finding selected."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", keyStyle.Render("Finding:"), f.Name)
	fmt.Fprintf(&sb, "%s %s\n", keyStyle.Render("Severity:"), severityStyled(f.Severity))
	fmt.Fprintf(&sb, "%s line %d, cols %d-%d\n", keyStyle.Render("Location:"), f.Line, f.StartColumn, f.EndColumn)
	if f.RelatedLine > 0 {
		fmt.Fprintf(&sb, "%s line %d\n", keyStyle.Render("First seen:"), f.RelatedLine)
	}
	if f.Remediation != "" {
		fmt.Fprintf(&sb, "%s %s\n", keyStyle.Render("Remediation:"), f.Remediation)
	}
	sb.WriteString("\n")
	buf, label := m.result.Redacted, "Redacted context:"
	if m.showOriginal {
		buf, label = m.source, "Original context:"
	}
	sb.WriteString(keyStyle.Render(label))
	sb.WriteString("\n")
	sb.WriteString(highlightContext(buf, f.Line, 3))
	return sb.String()
}

// highlightContext renders a few redacted lines around line with chroma
// highlighting as shell-style config.
func highlightContext(redacted string, line, radius int) string {
	lines := strings.Split(redacted, "\n")
	lo := line - 1 - radius
	if lo < 0 {
		lo = 0
	}
	hi := line + radius
	if hi > len(lines) {
		hi = len(lines)
	}
	snippet := strings.Join(lines[lo:hi], "\n")

	lexer := lexers.Get("bash")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	it, err := lexer.Tokenise(nil, snippet)
	if err != nil {
		return snippet
	}
	var sb strings.Builder
	if err := formatters.TTY256.Format(&sb, style, it); err != nil {
		return snippet
	}
	return sb.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading…"
	}
	title := titleStyle.Render(fmt.Sprintf("envgrade — grade %s (%d/100), %d findings",
		m.result.Grade.Letter, m.result.Grade.Score, len(m.result.Findings)))
	status := m.status
	if status == "" {
		status = "↑/↓ select · o toggle original · c copy redacted · q quit"
	}
	return strings.Join([]string{
		title,
		tableBorderStyle.Render(m.table.View()),
		detailBorderStyle.Render(m.viewport.View()),
		statusStyle.Render(" " + status + " "),
	}, "\n")
}
