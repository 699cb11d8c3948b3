package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/dto"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/services"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/session"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/views"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"
)

type UserController struct {
	Users *services.UserService
	Views *views.Renderer
}

func NewUserController(users *services.UserService, v *views.Renderer) *UserController {
	return &UserController{Users: users, Views: v}
}

// Manage lists accounts and, on POST, adds or removes one depending on
// the action field.
func (c *UserController) Manage(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if r.Method == http.MethodPost {
		_ = r.ParseForm()
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		role := r.PostFormValue("role")
		action := r.PostFormValue("action")

		switch action {
		case "add":
			c.addUser(sess, username, password, role)
		case "remove":
			c.removeUser(sess, username)
		}
	}

	users, err := c.Users.ListUsers()
	if err != nil {
		global.Logger.Error().Err(err).Msg("list users")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, dto.UserSummary{Username: u.Username, Role: u.Role})
	}
	c.Views.Render(w, "index.html", views.IndexData{
		ActiveTab: "manage_users",
		Role:      sess.Role,
		Username:  sess.Username,
		Users:     summaries,
		Flashes:   sess.PopFlashes(),
	})
}

func (c *UserController) addUser(sess *session.Session, username, password, role string) {
	if username == "" || password == "" || role == "" {
		sess.AddFlash("danger", "Please fill all fields.")
		return
	}
	switch err := c.Users.CreateUser(username, password, role); {
	case errors.Is(err, services.ErrInvalidRole):
		sess.AddFlash("danger", "Invalid role selected.")
	case errors.Is(err, services.ErrUserExists):
		global.Logger.Warn().
			Str("event", "user_creation_failed").
			Str("reason", "duplicate_username").
			Str("target_user", username).
			Msg("user creation failed")
		sess.AddFlash("warning", fmt.Sprintf("User '%s' already exists.", username))
	case err != nil:
		// The raw error stays in the log, not in the notice.
		global.Logger.Error().
			Str("event", "user_creation_error").
			Err(err).
			Msg("user creation error")
		sess.AddFlash("danger", "Could not create user.")
	default:
		global.Logger.Info().
			Str("event", "user_created").
			Str("target_user", username).
			Str("target_role", role).
			Str("created_by", sess.Username).
			Msg("user account created")
		sess.AddFlash("success", fmt.Sprintf("User '%s' added as %s.", username, role))
	}
}

func (c *UserController) removeUser(sess *session.Session, username string) {
	if username == "" {
		sess.AddFlash("warning", "No username provided for deletion.")
		return
	}
	if err := c.Users.DeleteUser(username); err != nil {
		global.Logger.Error().Err(err).Msg("delete user")
		sess.AddFlash("danger", "Could not remove user.")
		return
	}
	global.Logger.Info().
		Str("event", "user_deleted").
		Str("target_user", username).
		Str("deleted_by", sess.Username).
		Msg("user account deleted")
	sess.AddFlash("info", fmt.Sprintf("User '%s' removed.", username))
}

// Existing returns the {username, role} listing as JSON.
func (c *UserController) Existing(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListUsers()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	summaries := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, dto.UserSummary{Username: u.Username, Role: u.Role})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summaries)
}
