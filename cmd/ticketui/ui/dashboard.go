package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/dto"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DashboardModel struct {
	Client  *Client
	Table   table.Model
	Tickets []models.Ticket
	Charts  dto.ChartData
	Status  string
	Err     error
}

// BoardMsg carries a refreshed board.
type BoardMsg struct {
	Tickets []models.Ticket
	Charts  dto.ChartData
	Err     error
}

// StatusSetMsg reports the outcome of a status change.
type StatusSetMsg struct {
	ID     uint
	Status string
	Err    error
}

func NewDashboardModel(client *Client, height int) DashboardModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Title", Width: 30},
		{Title: "Priority", Width: 10},
		{Title: "Status", Width: 12},
		{Title: "Created", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{Client: client, Table: t}
}

func (m DashboardModel) refresh() tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		tickets, err := client.Tickets()
		if err != nil {
			return BoardMsg{Err: err}
		}
		charts, err := client.ChartData()
		if err != nil {
			return BoardMsg{Err: err}
		}
		return BoardMsg{Tickets: tickets, Charts: charts}
	}
}

func (m DashboardModel) setStatus(status string) tea.Cmd {
	selected := m.Table.SelectedRow()
	if len(selected) == 0 {
		return nil
	}
	id, err := strconv.ParseUint(selected[0], 10, 32)
	if err != nil {
		return nil
	}
	client := m.Client
	return func() tea.Msg {
		return StatusSetMsg{ID: uint(id), Status: status, Err: client.UpdateStatus(uint(id), status)}
	}
}

func (m DashboardModel) Init() tea.Cmd { return m.refresh() }

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refresh()
		case "o":
			return m, m.setStatus(models.StatusOpen)
		case "p":
			return m, m.setStatus(models.StatusInProgress)
		case "d":
			return m, m.setStatus(models.StatusResolved)
		case "q":
			return m, tea.Quit
		}

	case BoardMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Tickets = msg.Tickets
		m.Charts = msg.Charts
		rows := make([]table.Row, 0, len(msg.Tickets))
		for _, t := range msg.Tickets {
			rows = append(rows, table.Row{
				strconv.FormatUint(uint64(t.ID), 10),
				t.Title,
				t.Priority,
				t.Status,
				t.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		m.Table.SetRows(rows)

	case StatusSetMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Status = fmt.Sprintf("Ticket %d marked as %s", msg.ID, msg.Status)
		return m, m.refresh()
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ticket Board") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(countsLine("priority", m.Charts.PriorityCounts))
	b.WriteString(countsLine("status", m.Charts.StatusCounts))
	keys := "r refresh, q quit"
	if m.Client.IsAdmin() {
		keys = "r refresh, o/p/d set Open/In Progress/Resolved, q quit"
	}
	b.WriteString("\n" + blurredStyle.Render(keys))
	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return docStyle.Render(b.String())
}

func countsLine(label string, counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(counts))
	for k, v := range counts {
		parts = append(parts, fmt.Sprintf("%s %d", k, v))
	}
	return blurredStyle.Render(label+": "+strings.Join(parts, " | ")) + "\n"
}
