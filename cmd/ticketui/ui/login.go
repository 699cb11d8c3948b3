package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type LoginModel struct {
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	inputHost = iota
	inputPort
	inputUsername
	inputPassword
)

func NewLoginModel() LoginModel {
	inputs := make([]textinput.Model, 4)

	inputs[inputHost] = textinput.New()
	inputs[inputHost].Prompt = "Host: "
	inputs[inputHost].Placeholder = "127.0.0.1"
	inputs[inputHost].SetValue("127.0.0.1")
	inputs[inputHost].Focus()

	inputs[inputPort] = textinput.New()
	inputs[inputPort].Prompt = "Port: "
	inputs[inputPort].Placeholder = "5000"
	inputs[inputPort].SetValue("5000")

	inputs[inputUsername] = textinput.New()
	inputs[inputUsername].Prompt = "Username: "
	inputs[inputUsername].Placeholder = "admin"

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Prompt = "Password: "
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword

	return LoginModel{Inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// LoginDoneMsg carries the outcome of a login attempt.
type LoginDoneMsg struct {
	Client *Client
	Err    error
}

func (m LoginModel) submit() tea.Cmd {
	host := strings.TrimSpace(m.Inputs[inputHost].Value())
	portStr := strings.TrimSpace(m.Inputs[inputPort].Value())
	username := m.Inputs[inputUsername].Value()
	password := m.Inputs[inputPassword].Value()
	return func() tea.Msg {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return LoginDoneMsg{Err: fmt.Errorf("invalid port %q", portStr)}
		}
		client, err := NewClient(host, port)
		if err != nil {
			return LoginDoneMsg{Err: err}
		}
		if err := client.Login(username, password); err != nil {
			return LoginDoneMsg{Err: err}
		}
		return LoginDoneMsg{Client: client}
	}
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submit()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}
	case LoginDoneMsg:
		m.Err = msg.Err
	}

	cmds := make([]tea.Cmd, len(m.Inputs))
	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ticket Management - Login") + "\n\n")
	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n" + blurredStyle.Render("Tab to move, Enter on the last field to log in, Ctrl+C to quit"))
	if m.Err != nil {
		b.WriteString("\n\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}
