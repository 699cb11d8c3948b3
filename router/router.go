package router

import (
	"net/http"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/controllers"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/middleware"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/views"
)

// New builds the route table. Admin-only routes sit behind the admin
// guard; the login guard and session middleware wrap the whole mux in
// initialize.
func New(authCtrl *controllers.AuthController, ticketCtrl *controllers.TicketController, userCtrl *controllers.UserController, healthCtrl *controllers.HealthController) http.Handler {
	mux := http.NewServeMux()

	// public (behind the session middleware, outside the login guard)
	mux.HandleFunc("GET /login", authCtrl.LoginForm)
	mux.HandleFunc("POST /login", authCtrl.Login)
	mux.HandleFunc("GET /health", healthCtrl.Check)
	mux.Handle("GET /static/", http.FileServer(views.StaticFS()))

	// authenticated
	mux.HandleFunc("GET /logout", authCtrl.Logout)
	mux.HandleFunc("/{$}", ticketCtrl.Index)
	mux.HandleFunc("GET /home", ticketCtrl.Home)
	mux.HandleFunc("GET /get_chart_data", ticketCtrl.ChartData)
	mux.HandleFunc("/search", ticketCtrl.Search)
	mux.HandleFunc("GET /incident", ticketCtrl.Incident)
	mux.HandleFunc("GET /api/tickets", ticketCtrl.List)

	// admin only
	mux.Handle("POST /add_ticket", middleware.RequireAdmin(http.HandlerFunc(ticketCtrl.Add)))
	mux.Handle("GET /update_status/{ticket_id}/{status}", middleware.RequireAdmin(http.HandlerFunc(ticketCtrl.UpdateStatus)))
	mux.Handle("/edit_ticket/{ticket_id}", middleware.RequireAdmin(http.HandlerFunc(ticketCtrl.Edit)))
	mux.Handle("/manage_users", middleware.RequireAdmin(http.HandlerFunc(userCtrl.Manage)))
	mux.Handle("GET /existing_users", middleware.RequireAdminJSON(http.HandlerFunc(userCtrl.Existing)))

	return mux
}
