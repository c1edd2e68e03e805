package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/apimgr/xfetch/src/prompt"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printTemplates writes one block per registered template
func printTemplates(w io.Writer, color bool) error {
	name := func(s string) string { return s }
	label := func(s string) string { return s }
	if color {
		name = func(s string) string { return nameStyle.Render(s) }
		label = func(s string) string { return labelStyle.Render(s) }
	}

	var b strings.Builder
	b.WriteString("Available templates:\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, t := range prompt.All() {
		fmt.Fprintf(&b, "  %s\n", name(t.Name))
		fmt.Fprintf(&b, "    %s %s\n", label("Description:"), t.Description)
		fmt.Fprintf(&b, "    %s %s\n", label("Parameters:"), strings.Join(t.Params, ", "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
