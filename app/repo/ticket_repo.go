package repo

import (
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"

	"gorm.io/gorm"
)

type TicketRepository struct{ db *gorm.DB }

func NewTicketRepository(db *gorm.DB) *TicketRepository { return &TicketRepository{db: db} }

func (r *TicketRepository) Create(t *models.Ticket) error { return r.db.Create(t).Error }

// All returns every ticket ordered by ascending id.
func (r *TicketRepository) All() ([]models.Ticket, error) {
	var tickets []models.Ticket
	return tickets, r.db.Order("id asc").Find(&tickets).Error
}

// SearchByTitle returns tickets whose title contains query as a
// case-insensitive substring.
func (r *TicketRepository) SearchByTitle(query string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	pattern := "%" + query + "%"
	return tickets, r.db.Where("LOWER(title) LIKE LOWER(?)", pattern).Order("id asc").Find(&tickets).Error
}

func (r *TicketRepository) ByID(id uint) (*models.Ticket, error) {
	var t models.Ticket
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateFields rewrites title, description and priority. Status and
// created_at stay untouched. Returns the number of rows affected.
func (r *TicketRepository) UpdateFields(id uint, title, description, priority string) (int64, error) {
	res := r.db.Model(&models.Ticket{}).Where("id = ?", id).Updates(map[string]any{
		"title":       title,
		"description": description,
		"priority":    priority,
	})
	return res.RowsAffected, res.Error
}

// UpdateStatus sets the status of a single ticket and reports how many
// rows changed, so callers can tell a missing id apart from success.
func (r *TicketRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.db.Model(&models.Ticket{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *TicketRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Ticket{}).Count(&count).Error
}
