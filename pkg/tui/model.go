package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultforge/argon2/pkg/argon2"
	"github.com/vaultforge/argon2/pkg/profile"
)

type view int

const (
	menuView view = iota
	passwordView
	resultView
	verifyView
)

var profileOrder = []string{"interactive", "moderate", "sensitive"}

type model struct {
	cfg         *profile.Config
	keybindings profile.Keybindings

	currentView  view
	cursor       int
	commandInput string

	profileName string
	variant     argon2.Variant

	input string

	phc      string
	params   *argon2.Params
	tag      []byte
	duration time.Duration
	err      error
	message  string

	verifyInput  string
	verifyResult string
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#585858")).
			Padding(1, 2).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#585858")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8A8A8"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D75F"}).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D78700", Dark: "#FFAF00"}).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#5FAFFF"}).
			Bold(true)
)

// NewModel builds the Argon2 parameter lab's initial state.
func NewModel() *model {
	cfg, _ := profile.Load()
	return &model{
		cfg:         cfg,
		keybindings: cfg.Keybindings,
		currentView: menuView,
		profileName: "moderate",
		variant:     argon2.Argon2id,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		if key == ":" && m.commandInput == "" {
			m.commandInput = ":"
			return m, nil
		}
		if m.commandInput != "" {
			switch key {
			case "enter":
				if m.commandInput == m.keybindings.Quit {
					return m, tea.Quit
				}
				m.commandInput = ""
			case "backspace":
				if len(m.commandInput) > 0 {
					m.commandInput = m.commandInput[:len(m.commandInput)-1]
				}
			case "esc":
				m.commandInput = ""
			default:
				if len(key) == 1 {
					m.commandInput += key
				}
			}
			return m, nil
		}

		if m.currentView == passwordView {
			return m.updatePasswordEntry(key)
		}
		if m.currentView == verifyView {
			return m.updateVerifyEntry(key)
		}

		switch key {
		case m.keybindings.QuitAlt:
			return m, tea.Quit

		case m.keybindings.Back:
			m.currentView = menuView
			m.message = ""
			m.err = nil
			return m, nil

		case m.keybindings.Up, m.keybindings.UpAlt:
			if m.cursor > 0 {
				m.cursor--
			}

		case m.keybindings.Down, m.keybindings.DownAlt:
			maxCursor := 0
			switch m.currentView {
			case menuView:
				maxCursor = len(profileOrder) + 2
			}
			if m.cursor < maxCursor {
				m.cursor++
			}

		case m.keybindings.Select:
			return m.handleEnter()
		}
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.currentView {
	case menuView:
		switch {
		case m.cursor < len(profileOrder):
			m.profileName = profileOrder[m.cursor]
			m.currentView = passwordView
			m.input = ""
		case m.cursor == len(profileOrder):
			if m.variant == argon2.Argon2id {
				m.variant = argon2.Argon2i
			} else if m.variant == argon2.Argon2i {
				m.variant = argon2.Argon2d
			} else {
				m.variant = argon2.Argon2id
			}
		case m.cursor == len(profileOrder)+1:
			m.currentView = passwordView
			m.input = ""
		case m.cursor == len(profileOrder)+2:
			return m, tea.Quit
		}
	case resultView:
		m.currentView = verifyView
		m.verifyInput = ""
		m.verifyResult = ""
	}
	return m, nil
}

func (m model) updatePasswordEntry(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.currentView = menuView
		return m, nil
	case "enter":
		return m.computeHash()
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if len(key) == 1 {
			m.input += key
		}
	}
	return m, nil
}

func (m model) updateVerifyEntry(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc":
		m.currentView = menuView
		return m, nil
	case "enter":
		ok, err := argon2.Verify(m.params, []byte(m.verifyInput), m.tag)
		if err != nil {
			m.verifyResult = errorStyle.Render(fmt.Sprintf("verification error: %v", err))
		} else if ok {
			m.verifyResult = successStyle.Render("match")
		} else {
			m.verifyResult = errorStyle.Render("no match")
		}
		m.verifyInput = ""
	case "backspace":
		if len(m.verifyInput) > 0 {
			m.verifyInput = m.verifyInput[:len(m.verifyInput)-1]
		}
	default:
		if len(key) == 1 {
			m.verifyInput += key
		}
	}
	return m, nil
}

func (m model) computeHash() (tea.Model, tea.Cmd) {
	salt, err := argon2.GenerateSalt(16)
	if err != nil {
		m.err = err
		return m, nil
	}

	spec, ok := m.cfg.Profiles[m.profileName]
	if !ok {
		spec = profile.Spec{Variant: "argon2id", Version: 0x13, MemoryKB: 64 * 1024, Time: 3, Parallelism: 4, TagLen: 32}
	}
	spec.Variant = m.variant.String()

	params, err := spec.Params(salt)
	if err != nil {
		m.err = err
		m.currentView = menuView
		return m, nil
	}

	start := time.Now()
	tag, err := argon2.Hash(params, []byte(m.input))
	m.duration = time.Since(start)
	if err != nil {
		m.err = err
		m.currentView = menuView
		return m, nil
	}

	phc, err := argon2.Encode(params, tag)
	if err != nil {
		m.err = err
		m.currentView = menuView
		return m, nil
	}

	m.params = params
	m.tag = tag
	m.phc = phc
	m.err = nil
	m.currentView = resultView
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Argon2 Parameter Lab"))
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\n")
	}

	switch m.currentView {
	case menuView:
		s.WriteString(m.renderMenu())
	case passwordView:
		s.WriteString(m.renderPasswordEntry())
	case resultView:
		s.WriteString(m.renderResult())
	case verifyView:
		s.WriteString(m.renderVerify())
	}

	s.WriteString("\n\n")

	if m.commandInput != "" {
		s.WriteString(selectedStyle.Render(m.commandInput + "▋"))
		s.WriteString("\n")
	} else {
		s.WriteString(normalStyle.Render("Press ':q' or 'ctrl+c' to quit, 'esc' to go back, ↑/↓ or k/j to navigate, enter to select"))
		s.WriteString("\n")
	}

	return s.String()
}

func (m model) renderMenu() string {
	var s strings.Builder
	labels := make([]string, 0, len(profileOrder)+2)
	for _, name := range profileOrder {
		labels = append(labels, fmt.Sprintf("Hash with %q profile", name))
	}
	labels = append(labels, fmt.Sprintf("Toggle variant (current: %s)", m.variant))
	labels = append(labels, "Hash with current profile and variant")
	labels = append(labels, "Exit")

	for i, item := range labels {
		cursor := " "
		line := fmt.Sprintf("%s %s", cursor, item)
		if m.cursor == i {
			s.WriteString(selectedStyle.Render("> " + item))
		} else {
			s.WriteString(normalStyle.Render(line))
		}
		s.WriteString("\n")
	}
	return menuStyle.Render(s.String())
}

func (m model) renderPasswordEntry() string {
	var s strings.Builder
	s.WriteString(infoStyle.Render(fmt.Sprintf("Profile: %s  Variant: %s", m.profileName, m.variant)))
	s.WriteString("\n\n")
	s.WriteString(normalStyle.Render("Type a passphrase, enter to hash:"))
	s.WriteString("\n")
	s.WriteString(selectedStyle.Render(strings.Repeat("*", len(m.input)) + "▋"))
	return s.String()
}

func (m model) renderResult() string {
	var s strings.Builder
	s.WriteString(successStyle.Render(fmt.Sprintf("Computed in %s", m.duration)))
	s.WriteString("\n\n")
	s.WriteString(normalStyle.Render(m.phc))
	s.WriteString("\n\n")
	s.WriteString(warningStyle.Render("enter to verify a candidate against this hash"))
	return s.String()
}

func (m model) renderVerify() string {
	var s strings.Builder
	s.WriteString(normalStyle.Render("Type a candidate passphrase, enter to check:"))
	s.WriteString("\n")
	s.WriteString(selectedStyle.Render(strings.Repeat("*", len(m.verifyInput)) + "▋"))
	s.WriteString("\n\n")
	if m.verifyResult != "" {
		s.WriteString(m.verifyResult)
	}
	return s.String()
}

// RunBubbleTea starts the Argon2 parameter lab TUI.
func RunBubbleTea() error {
	p := tea.NewProgram(NewModel())
	_, err := p.Run()
	return err
}
