package tui

import (
	"fmt"
	"strings"
)

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Capability Catalog"))
	b.WriteString("\n")

	if m.state == stateLogin {
		m.viewLogin(&b)
	} else {
		m.viewCatalog(&b)
	}

	if m.banner != nil {
		b.WriteString("\n")
		if m.banner.isErr {
			b.WriteString(m.styles.Error.Render(m.banner.text))
		} else {
			b.WriteString(m.styles.Success.Render(m.banner.text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewLogin(b *strings.Builder) {
	b.WriteString(m.styles.Header.Render("Login"))
	b.WriteString("\n\n")
	b.WriteString(m.emailInput.View())
	b.WriteString("\n")
	b.WriteString(m.passwordInput.View())
	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.styles.Faint.Render("Signing in..."))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab: switch field  enter: login  esc: quit"))
	b.WriteString("\n")
}

func (m *Model) viewCatalog(b *strings.Builder) {
	if m.session != nil {
		b.WriteString(m.styles.Label.Render(
			fmt.Sprintf("Signed in as %s (%s)", m.session.Email(), m.session.Role())))
		b.WriteString("\n\n")
	}

	if m.fetchFailed {
		b.WriteString(m.styles.Error.Render("Failed to load capabilities."))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("g: retry  q: quit"))
		b.WriteString("\n")
		return
	}

	names := m.capabilityNames()
	if len(names) == 0 {
		if m.loading {
			b.WriteString(m.styles.Faint.Render("Loading capabilities..."))
		} else {
			b.WriteString(m.styles.Faint.Render("No capabilities found."))
		}
		b.WriteString("\n")
		return
	}

	for i, name := range names {
		entry := m.catalog[name]
		line := fmt.Sprintf("%s  (%d/%d)", name, len(entry.Consultants), entry.Capacity)
		if i == m.capCursor && m.pane != focusRoster {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if name, ok := m.selectedCapability(); ok {
		entry := m.catalog[name]
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render(name))
		b.WriteString("\n")
		b.WriteString(m.styles.Normal.Render(entry.Description))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Practice area: "))
		b.WriteString(m.styles.Normal.Render(entry.PracticeArea))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Verticals: "))
		if len(entry.IndustryVerticals) == 0 {
			b.WriteString(m.styles.Faint.Render("Not specified"))
		} else {
			b.WriteString(m.styles.Normal.Render(strings.Join(entry.IndustryVerticals, ", ")))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Consultants:"))
		b.WriteString("\n")
		if len(entry.Consultants) == 0 {
			b.WriteString(m.styles.Faint.Render("  (none)"))
			b.WriteString("\n")
		}
		for i, email := range entry.Consultants {
			if i == m.rosterCursor && m.pane == focusRoster {
				b.WriteString(m.styles.Selected.Render("  > " + email))
			} else {
				b.WriteString(m.styles.Normal.Render("    " + email))
			}
			b.WriteString("\n")
		}
	}

	if m.pane == focusEmail {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render("Register consultant"))
		b.WriteString("\n")
		b.WriteString(m.registerInput.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter: register  esc: cancel"))
		b.WriteString("\n")
		return
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	b.WriteString("\n")
}

// helpLine only advertises the register-others and unregister keys to
// Admins and Approvers. Consultants never see a delete affordance.
func (m *Model) helpLine() string {
	keys := []string{"up/down: move", "tab: roster", "r: register me", "g: refresh"}
	if m.canManageOthers() {
		keys = append(keys, "e: register other", "u: unregister")
	}
	keys = append(keys, "q: quit")
	return strings.Join(keys, "  ")
}
