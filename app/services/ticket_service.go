package services

import (
	"errors"
	"time"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/repo"
)

var (
	ErrInvalidStatus  = errors.New("invalid status")
	ErrTicketNotFound = errors.New("ticket not found")
)

type TicketService struct{ tickets *repo.TicketRepository }

func NewTicketService(tickets *repo.TicketRepository) *TicketService {
	return &TicketService{tickets: tickets}
}

// Create inserts a new ticket. Priority is coerced into the closed set
// rather than rejected, status is always Open. Returns the priority that
// was actually stored.
func (s *TicketService) Create(title, description, priority string) (string, error) {
	priority = models.NormalizePriority(priority)
	t := models.Ticket{
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      models.StatusOpen,
		CreatedAt:   time.Now(),
	}
	if err := s.tickets.Create(&t); err != nil {
		return "", err
	}
	return priority, nil
}

// Update rewrites title/description/priority of an existing ticket with
// the same coercion rule as Create. Status and created_at are untouched.
func (s *TicketService) Update(id uint, title, description, priority string) (string, error) {
	priority = models.NormalizePriority(priority)
	rows, err := s.tickets.UpdateFields(id, title, description, priority)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "", ErrTicketNotFound
	}
	return priority, nil
}

// UpdateStatus validates the target status against the closed set before
// touching the database, then requires the row to exist: zero rows
// affected surfaces as ErrTicketNotFound instead of a silent no-op.
func (s *TicketService) UpdateStatus(id uint, status string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	rows, err := s.tickets.UpdateStatus(id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTicketNotFound
	}
	return nil
}

func (s *TicketService) Get(id uint) (*models.Ticket, error) {
	return s.tickets.ByID(id)
}

// List returns the full board when query is empty, otherwise the tickets
// whose title contains query case-insensitively.
func (s *TicketService) List(query string) ([]models.Ticket, error) {
	if query == "" {
		return s.tickets.All()
	}
	return s.tickets.SearchByTitle(query)
}

// CountByPriorityAndStatus tallies priority and status frequencies over
// the given set, feeding the dashboard charts.
func CountByPriorityAndStatus(tickets []models.Ticket) (map[string]int, map[string]int) {
	priorities := make(map[string]int)
	statuses := make(map[string]int)
	for _, t := range tickets {
		priorities[t.Priority]++
		statuses[t.Status]++
	}
	return priorities, statuses
}
