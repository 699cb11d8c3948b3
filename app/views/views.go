package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/dto"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/session"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS serves /static/ assets.
func StaticFS() http.FileSystem { return http.FS(staticFS) }

type Renderer struct{ pages map[string]*template.Template }

// New parses each page template on its own so pages can reuse block
// names without colliding.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"login.html", "index.html"} {
		t, err := template.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data any) {
	t, ok := r.pages[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		global.Logger.Error().Err(err).Str("template", name).Msg("render template")
	}
}

// LoginData backs the credential form.
type LoginData struct {
	Flashes []session.Flash
}

// IndexData backs the single-page dashboard template with its tabs.
type IndexData struct {
	Tickets        []models.Ticket
	SearchQuery    string
	PriorityCounts map[string]int
	StatusCounts   map[string]int
	ActiveTab      string
	Role           string
	Username       string
	EditTicket     *models.Ticket
	Users          []dto.UserSummary
	Flashes        []session.Flash
}

func (d IndexData) IsAdmin() bool { return d.Role == models.RoleAdmin }
