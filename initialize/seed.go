package initialize

import (
	"time"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/repo"
)

// seedTickets inserts the starter board into an empty tickets table so a
// fresh install has something to show.
func seedTickets(tickets *repo.TicketRepository) error {
	count, err := tickets.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	base := time.Date(2025, 7, 20, 9, 45, 0, 0, time.Local)
	samples := []models.Ticket{
		{Title: "Login Failure", Description: "User reports login issue on portal", Priority: models.PriorityHigh, Status: models.StatusOpen, CreatedAt: base.Add(15 * time.Minute)},
		{Title: "Application Crash", Description: "App crashes during data import", Priority: models.PriorityHigh, Status: models.StatusInProgress, CreatedAt: base.Add(90 * time.Minute)},
		{Title: "Report Generation Issue", Description: "Report not generating correctly", Priority: models.PriorityMedium, Status: models.StatusOpen, CreatedAt: base.Add(165 * time.Minute)},
		{Title: "UI Glitch", Description: "Minor display issue on dashboard", Priority: models.PriorityLow, Status: models.StatusResolved, CreatedAt: base},
	}
	for i := range samples {
		if err := tickets.Create(&samples[i]); err != nil {
			return err
		}
	}
	return nil
}
