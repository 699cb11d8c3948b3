package main

import (
	"fmt"
	"os"

	"github.com/jaiswaranil8387/itsm-ticket-management/cmd/ticketui/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(ui.NewRootModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ticketui:", err)
		os.Exit(1)
	}
}
