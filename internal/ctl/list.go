package ctl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every capability in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := newClient().Capabilities(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch capabilities: %w", err)
		}

		fmt.Print(renderCatalog(catalog))
		return nil
	},
}

// renderCatalog formats the catalog sorted by name. Split out so it can be
// tested without a terminal.
func renderCatalog(catalog capsdk.Catalog) string {
	if len(catalog) == 0 {
		return emptyStyle.Render("No capabilities found.") + "\n"
	}

	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		entry := catalog[name]

		b.WriteString(nameStyle.Render(name))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Practice area: "))
		b.WriteString(entry.PracticeArea)
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Capacity:      "))
		fmt.Fprintf(&b, "%d h/week", entry.Capacity)
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Verticals:     "))
		if len(entry.IndustryVerticals) == 0 {
			b.WriteString(emptyStyle.Render("Not specified"))
		} else {
			b.WriteString(strings.Join(entry.IndustryVerticals, ", "))
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Consultants:   "))
		if len(entry.Consultants) == 0 {
			b.WriteString(emptyStyle.Render("none"))
		} else {
			b.WriteString(strings.Join(entry.Consultants, ", "))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
