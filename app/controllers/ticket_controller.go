package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/dto"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/services"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/session"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/views"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"
)

type TicketController struct {
	Tickets *services.TicketService
	Views   *views.Renderer
}

func NewTicketController(tickets *services.TicketService, v *views.Renderer) *TicketController {
	return &TicketController{Tickets: tickets, Views: v}
}

func (c *TicketController) searchQuery(r *http.Request) string {
	if r.Method != http.MethodPost {
		return ""
	}
	_ = r.ParseForm()
	return r.PostFormValue("search_query")
}

func (c *TicketController) renderBoard(w http.ResponseWriter, r *http.Request, tab, query string, withCounts bool) {
	sess := session.FromContext(r.Context())
	tickets, err := c.Tickets.List(query)
	if err != nil {
		global.Logger.Error().Err(err).Msg("list tickets")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	data := views.IndexData{
		Tickets:     tickets,
		SearchQuery: query,
		ActiveTab:   tab,
		Role:        sess.Role,
		Username:    sess.Username,
		Flashes:     sess.PopFlashes(),
	}
	if withCounts {
		data.PriorityCounts, data.StatusCounts = services.CountByPriorityAndStatus(tickets)
	}
	c.Views.Render(w, "index.html", data)
}

// Index is the dashboard: optional search plus priority/status counts
// over the returned set.
func (c *TicketController) Index(w http.ResponseWriter, r *http.Request) {
	query := c.searchQuery(r)
	if r.Method == http.MethodGet {
		sess := session.FromContext(r.Context())
		global.Logger.Info().
			Str("event", "page_view").
			Str("page", "dashboard").
			Str("user", sess.Username).
			Msg("dashboard accessed")
	}
	c.renderBoard(w, r, "home", query, true)
}

func (c *TicketController) Home(w http.ResponseWriter, r *http.Request) {
	c.renderBoard(w, r, "home", "", true)
}

func (c *TicketController) Search(w http.ResponseWriter, r *http.Request) {
	query := c.searchQuery(r)
	if query != "" {
		sess := session.FromContext(r.Context())
		global.Logger.Info().
			Str("event", "user_search").
			Str("query", query).
			Str("user", sess.Username).
			Msg("user performed search")
	}
	c.renderBoard(w, r, "search", query, false)
}

func (c *TicketController) Incident(w http.ResponseWriter, r *http.Request) {
	c.renderBoard(w, r, "incident", "", false)
}

// ChartData returns the dashboard counts as JSON, always over the full
// unfiltered ticket set.
func (c *TicketController) ChartData(w http.ResponseWriter, r *http.Request) {
	tickets, err := c.Tickets.List("")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	priorities, statuses := services.CountByPriorityAndStatus(tickets)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.ChartData{PriorityCounts: priorities, StatusCounts: statuses})
}

// List returns the full ticket set as JSON for programmatic clients.
func (c *TicketController) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := c.Tickets.List("")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tickets)
}

// Add creates a ticket. All three fields are required; the priority value
// itself is coerced, not validated.
func (c *TicketController) Add(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	_ = r.ParseForm()
	title := r.PostFormValue("title")
	description := r.PostFormValue("description")
	priority := r.PostFormValue("priority")

	if title == "" || description == "" || priority == "" {
		global.Logger.Warn().
			Str("event", "ticket_creation_failed").
			Str("user", sess.Username).
			Msg("ticket creation failed, missing fields")
		sess.AddFlash("danger", "Please fill in all fields.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	stored, err := c.Tickets.Create(title, description, priority)
	if err != nil {
		global.Logger.Error().Err(err).Msg("create ticket")
		sess.AddFlash("danger", "Could not create ticket.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	global.Logger.Info().
		Str("event", "ticket_created").
		Str("title", title).
		Str("priority", stored).
		Str("created_by", sess.Username).
		Msg("ticket created")
	sess.AddFlash("success", fmt.Sprintf("Ticket submitted with %s priority!", stored))
	http.Redirect(w, r, "/", http.StatusFound)
}

// UpdateStatus flips a ticket's status. The target status is checked
// against the closed set first; a valid status on a missing ticket is a
// not-found, never a silent success.
func (c *TicketController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	id, err := strconv.ParseUint(r.PathValue("ticket_id"), 10, 32)
	if err != nil {
		sess.AddFlash("danger", "Invalid ticket id.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	status := r.PathValue("status")

	switch err := c.Tickets.UpdateStatus(uint(id), status); {
	case errors.Is(err, services.ErrInvalidStatus):
		global.Logger.Error().
			Str("event", "invalid_operation").
			Uint64("ticket_id", id).
			Str("invalid_status", status).
			Str("user", sess.Username).
			Msg("invalid status update attempt")
		sess.AddFlash("danger", "Invalid status.")
	case errors.Is(err, services.ErrTicketNotFound):
		sess.AddFlash("danger", "Ticket not found.")
	case err != nil:
		global.Logger.Error().Err(err).Msg("update ticket status")
		sess.AddFlash("danger", "Could not update ticket.")
	default:
		global.Logger.Info().
			Str("event", "status_change").
			Uint64("ticket_id", id).
			Str("new_status", status).
			Str("updated_by", sess.Username).
			Msg("ticket status updated")
		sess.AddFlash("success", fmt.Sprintf("Ticket %d marked as %s.", id, status))
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Edit shows the pre-filled edit form on GET and applies the update on
// POST. Id and created_at never change.
func (c *TicketController) Edit(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	id, err := strconv.ParseUint(r.PathValue("ticket_id"), 10, 32)
	if err != nil {
		sess.AddFlash("danger", "Invalid ticket id.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	ticket, err := c.Tickets.Get(uint(id))
	if err != nil {
		global.Logger.Warn().
			Str("event", "ticket_not_found").
			Uint64("ticket_id", id).
			Str("user", sess.Username).
			Msg("edit attempt on missing ticket")
		sess.AddFlash("danger", "Ticket not found.")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if r.Method == http.MethodPost {
		_ = r.ParseForm()
		title := r.PostFormValue("title")
		description := r.PostFormValue("description")
		priority := r.PostFormValue("priority")
		if title == "" || description == "" || priority == "" {
			sess.AddFlash("danger", "Please fill in all fields.")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		stored, err := c.Tickets.Update(uint(id), title, description, priority)
		if err != nil {
			global.Logger.Error().Err(err).Msg("update ticket")
			sess.AddFlash("danger", "Could not update ticket.")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		global.Logger.Info().
			Str("event", "ticket_updated").
			Uint64("ticket_id", id).
			Str("priority", stored).
			Str("updated_by", sess.Username).
			Msg("ticket updated")
		sess.AddFlash("success", fmt.Sprintf("Ticket %d updated with %s priority!", id, stored))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	tickets, err := c.Tickets.List("")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	c.Views.Render(w, "index.html", views.IndexData{
		Tickets:    tickets,
		ActiveTab:  "create",
		Role:       sess.Role,
		Username:   sess.Username,
		EditTicket: ticket,
		Flashes:    sess.PopFlashes(),
	})
}
