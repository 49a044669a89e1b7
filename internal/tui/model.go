package tui

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovillalobos-slalom/capabilities/pkg/capsdk"
)

// bannerTimeout is how long a status banner stays on screen before it
// clears itself.
const bannerTimeout = 5 * time.Second

type state int

const (
	stateLogin state = iota
	stateCatalog
)

// focus tracks which pane of the catalog view receives key input.
type focus int

const (
	focusCapabilities focus = iota
	focusRoster
	focusEmail
)

type (
	loginDoneMsg struct {
		session *capsdk.Session
		err     error
	}

	catalogMsg struct {
		catalog capsdk.Catalog
		err     error
	}

	actionDoneMsg struct {
		message string
		err     error
	}

	// bannerClearMsg carries the sequence number of the banner it was
	// scheduled for. A newer banner bumps the sequence, so a stale
	// timer never wipes a message the user has not had time to read.
	bannerClearMsg struct {
		seq int
	}
)

type banner struct {
	text  string
	isErr bool
}

// Model drives the interactive capability browser. It starts on a login
// form unless constructed with an existing session, then moves to the
// catalog view.
type Model struct {
	client  *capsdk.Client
	session *capsdk.Session

	// OnLogin is invoked after a successful in-UI login so the caller
	// can persist the session. May be nil.
	OnLogin func(token, email, role string)

	state   state
	styles  Styles
	width   int
	height  int
	loading bool

	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int

	catalog      capsdk.Catalog
	fetchFailed  bool
	capCursor    int
	rosterCursor int
	pane         focus

	// registerInput is only shown to Admins and Approvers. Consultants
	// register with their own email and cannot edit it.
	registerInput textinput.Model

	banner    *banner
	bannerSeq int
}

// New builds a model that starts on the login form.
func New(client *capsdk.Client) *Model {
	m := newModel(client)
	m.state = stateLogin
	m.emailInput.Focus()
	return m
}

// NewWithSession builds a model that skips the login form and opens the
// catalog view with an already validated session.
func NewWithSession(client *capsdk.Client, session *capsdk.Session) *Model {
	m := newModel(client)
	m.session = session
	m.state = stateCatalog
	return m
}

func newModel(client *capsdk.Client) *Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	register := textinput.New()
	register.Placeholder = "consultant email"
	register.CharLimit = 128
	register.Width = 40

	return &Model{
		client:        client,
		styles:        DefaultStyles(),
		emailInput:    email,
		passwordInput: password,
		registerInput: register,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.state == stateCatalog {
		return m.fetchCatalog()
	}
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state == stateLogin {
			return m.updateLogin(msg)
		}
		return m.updateCatalog(msg)

	case loginDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.showError(msg.err.Error())
		}
		m.session = msg.session
		if m.OnLogin != nil {
			m.OnLogin(msg.session.Token(), msg.session.Email(), msg.session.Role())
		}
		m.state = stateCatalog
		m.passwordInput.SetValue("")
		return m, m.fetchCatalog()

	case catalogMsg:
		m.loading = false
		if msg.err != nil {
			// Whatever roster is on screen can no longer be trusted.
			// The failure notice stays up until a fetch succeeds.
			m.fetchFailed = true
			return m, m.showError(msg.err.Error())
		}
		m.fetchFailed = false
		m.catalog = msg.catalog
		m.clampCursors()
		return m, nil

	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			// Reload anyway. Another user may have changed the roster
			// underneath us and caused the failure.
			return m, tea.Batch(m.showError(msg.err.Error()), m.fetchCatalog())
		}
		return m, tea.Batch(m.showSuccess(msg.message), m.fetchCatalog())

	case bannerClearMsg:
		if msg.seq == m.bannerSeq {
			m.banner = nil
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.loginFocus = (m.loginFocus + 1) % 2
		if m.loginFocus == 0 {
			m.emailInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		}
		return m, textinput.Blink
	case tea.KeyEnter:
		email := m.emailInput.Value()
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			return m, m.showError("Email and password are required")
		}
		m.loading = true
		return m, m.login(email, password)
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pane == focusEmail {
		switch msg.Type {
		case tea.KeyEsc:
			m.pane = focusCapabilities
			m.registerInput.Blur()
			return m, nil
		case tea.KeyEnter:
			email := m.registerInput.Value()
			if email == "" {
				return m, m.showError("Email is required")
			}
			m.pane = focusCapabilities
			m.registerInput.Blur()
			return m, m.register(email)
		}
		var cmd tea.Cmd
		m.registerInput, cmd = m.registerInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "tab":
		if m.pane == focusCapabilities {
			m.pane = focusRoster
		} else {
			m.pane = focusCapabilities
		}
		m.clampCursors()
	case "g":
		m.loading = true
		return m, m.fetchCatalog()
	case "r":
		// Consultants always register themselves. Admins and Approvers
		// get an input to register someone else with "e".
		if m.session == nil {
			return m, m.showError("Please login first")
		}
		return m, m.register(m.session.Email())
	case "e":
		if m.canManageOthers() {
			m.pane = focusEmail
			m.registerInput.SetValue(m.session.Email())
			m.registerInput.CursorEnd()
			m.registerInput.Focus()
			return m, textinput.Blink
		}
	case "u", "x", "delete":
		if !m.canManageOthers() {
			return m, nil
		}
		email, ok := m.selectedConsultant()
		if !ok {
			return m, nil
		}
		return m, m.unregister(email)
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.pane == focusRoster {
		m.rosterCursor += delta
	} else {
		m.capCursor += delta
		m.rosterCursor = 0
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	names := m.capabilityNames()
	if len(names) == 0 {
		m.capCursor = 0
		m.rosterCursor = 0
		return
	}
	if m.capCursor < 0 {
		m.capCursor = 0
	}
	if m.capCursor >= len(names) {
		m.capCursor = len(names) - 1
	}
	roster := m.catalog[names[m.capCursor]].Consultants
	if m.rosterCursor < 0 {
		m.rosterCursor = 0
	}
	if m.rosterCursor >= len(roster) && len(roster) > 0 {
		m.rosterCursor = len(roster) - 1
	}
	if len(roster) == 0 {
		m.rosterCursor = 0
	}
}

// capabilityNames rebuilds the sorted name list from the current
// catalog on every call, so the picker always reflects the latest
// fetch rather than a cached snapshot.
func (m *Model) capabilityNames() []string {
	names := make([]string, 0, len(m.catalog))
	for name := range m.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Model) selectedCapability() (string, bool) {
	names := m.capabilityNames()
	if m.capCursor < 0 || m.capCursor >= len(names) {
		return "", false
	}
	return names[m.capCursor], true
}

func (m *Model) selectedConsultant() (string, bool) {
	name, ok := m.selectedCapability()
	if !ok {
		return "", false
	}
	roster := m.catalog[name].Consultants
	if m.rosterCursor < 0 || m.rosterCursor >= len(roster) {
		return "", false
	}
	return roster[m.rosterCursor], true
}

func (m *Model) canManageOthers() bool {
	if m.session == nil {
		return false
	}
	role := m.session.Role()
	return role == "Admin" || role == "Approver"
}

func (m *Model) showError(text string) tea.Cmd {
	return m.showBanner(text, true)
}

func (m *Model) showSuccess(text string) tea.Cmd {
	return m.showBanner(text, false)
}

func (m *Model) showBanner(text string, isErr bool) tea.Cmd {
	m.bannerSeq++
	m.banner = &banner{text: text, isErr: isErr}
	seq := m.bannerSeq
	return tea.Tick(bannerTimeout, func(time.Time) tea.Msg {
		return bannerClearMsg{seq: seq}
	})
}

func (m *Model) login(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		session, err := client.Login(context.Background(), email, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m *Model) fetchCatalog() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		catalog, err := client.Capabilities(context.Background())
		return catalogMsg{catalog: catalog, err: err}
	}
}

func (m *Model) register(email string) tea.Cmd {
	name, ok := m.selectedCapability()
	if !ok {
		return m.showError("No capability selected")
	}
	session := m.session
	m.loading = true
	return func() tea.Msg {
		resp, err := session.Register(context.Background(), name, email)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: resp.Message}
	}
}

func (m *Model) unregister(email string) tea.Cmd {
	name, ok := m.selectedCapability()
	if !ok {
		return m.showError("No capability selected")
	}
	session := m.session
	m.loading = true
	return func() tea.Msg {
		resp, err := session.Unregister(context.Background(), name, email)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: resp.Message}
	}
}
