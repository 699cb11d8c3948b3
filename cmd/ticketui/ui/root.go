package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
)

type RootModel struct {
	State     state
	Login     LoginModel
	Dashboard DashboardModel
	height    int
}

func NewRootModel() RootModel {
	return RootModel{State: stateLogin, Login: NewLoginModel()}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if m.State == stateDashboard {
			m.Dashboard.Table.SetHeight(max(msg.Height-10, 5))
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case LoginDoneMsg:
		if msg.Err == nil {
			m.State = stateDashboard
			m.Dashboard = NewDashboardModel(msg.Client, m.height)
			return m, m.Dashboard.Init()
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case stateLogin:
		m.Login, cmd = m.Login.Update(msg)
	case stateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	}
	return m, cmd
}

func (m RootModel) View() string {
	switch m.State {
	case stateDashboard:
		return m.Dashboard.View()
	default:
		return m.Login.View()
	}
}
