package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Entry is one style override in a skin file.
type Entry struct {
	Fg        string `yaml:"fg"`
	Bg        string `yaml:"bg"`
	Bold      *bool  `yaml:"bold"`
	Italic    *bool  `yaml:"italic"`
	Underline *bool  `yaml:"underline"`
}

// Load reads a YAML skin and applies it over the default styles. An empty
// path returns the defaults.
func Load(path string) (*Styles, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skin: %w", err)
	}
	return Parse(data)
}

// Parse applies a YAML skin document over the default styles.
func Parse(data []byte) (*Styles, error) {
	var skin map[string]Entry
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return nil, fmt.Errorf("parse skin: %w", err)
	}
	styles := *Default()
	fields := styles.fields()
	names := make([]string, 0, len(skin))
	for name := range skin {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		field, ok := fields[normalise(name)]
		if !ok {
			return nil, fmt.Errorf("unknown style %q", name)
		}
		*field = ptr(skin[name].apply(**field))
	}
	return &styles, nil
}

func (e Entry) apply(st lipgloss.Style) lipgloss.Style {
	if e.Fg != "" {
		st = st.Foreground(lipgloss.Color(e.Fg))
	}
	if e.Bg != "" {
		st = st.Background(lipgloss.Color(e.Bg))
	}
	if e.Bold != nil {
		st = st.Bold(*e.Bold)
	}
	if e.Italic != nil {
		st = st.Italic(*e.Italic)
	}
	if e.Underline != nil {
		st = st.Underline(*e.Underline)
	}
	return st
}

func (s *Styles) fields() map[string]**lipgloss.Style {
	return map[string]**lipgloss.Style{
		"text":               &s.Text,
		"selected_line":      &s.SelectedLine,
		"selection_mark":     &s.SelectionMark,
		"char_match":         &s.CharMatch,
		"table_border":       &s.TableBorder,
		"header":             &s.Header,
		"scrollbar_thumb":    &s.ScrollbarThumb,
		"scrollbar_track":    &s.ScrollbarTrack,
		"usage_normal":       &s.UsageNormal,
		"usage_warning":      &s.UsageWarning,
		"usage_critical":     &s.UsageCritical,
		"directory":          &s.Directory,
		"file":               &s.File,
		"executable":         &s.Executable,
		"error":              &s.Error,
		"info":               &s.Info,
		"footer":             &s.Footer,
		"filter":             &s.Filter,
		"filter_prompt":      &s.FilterPrompt,
		"filter_placeholder": &s.FilterPlaceholder,
		"cursor":             &s.Cursor,
	}
}

func normalise(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
