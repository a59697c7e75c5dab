package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Text           *lipgloss.Style
	SelectedLine   *lipgloss.Style
	SelectionMark  *lipgloss.Style
	CharMatch      *lipgloss.Style
	TableBorder    *lipgloss.Style
	Header         *lipgloss.Style
	ScrollbarThumb *lipgloss.Style
	ScrollbarTrack *lipgloss.Style
	UsageNormal    *lipgloss.Style
	UsageWarning   *lipgloss.Style
	UsageCritical  *lipgloss.Style

	Directory  *lipgloss.Style
	File       *lipgloss.Style
	Executable *lipgloss.Style

	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

var defaultStyles = Styles{
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedLine: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	SelectionMark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	CharMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	TableBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	ScrollbarThumb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	ScrollbarTrack: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	),
	UsageNormal: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	UsageWarning: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	UsageCritical: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Directory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	File: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Executable: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Usage thresholds, as fractions of the filesystem size.
const (
	WarningShare  = 0.70
	CriticalShare = 0.90
)

// ShareStyle picks the severity style for a use share in [0,1].
func (s *Styles) ShareStyle(share float64) *lipgloss.Style {
	switch {
	case share >= CriticalShare:
		return s.UsageCritical
	case share >= WarningShare:
		return s.UsageWarning
	default:
		return s.UsageNormal
	}
}

// OnSelected returns st with the selected line background filled in.
func (s *Styles) OnSelected(st *lipgloss.Style) lipgloss.Style {
	return st.Inherit(*s.SelectedLine)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
