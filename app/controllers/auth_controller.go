package controllers

import (
	"errors"
	"net/http"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/services"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/session"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/views"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"
)

type AuthController struct {
	Users *services.UserService
	Views *views.Renderer
}

func NewAuthController(users *services.UserService, v *views.Renderer) *AuthController {
	return &AuthController{Users: users, Views: v}
}

func (c *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	c.Views.Render(w, "login.html", views.LoginData{Flashes: sess.PopFlashes()})
}

// Login verifies the submitted credentials. Failure shows one generic
// notice for both unknown user and wrong password.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	sess := session.FromContext(r.Context())

	u, err := c.Users.ValidateCredentials(username, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			global.Logger.Error().Err(err).Msg("credential lookup")
		}
		global.Logger.Warn().
			Str("event", "auth_failed").
			Str("user", username).
			Msg("user authentication failed")
		sess.AddFlash("danger", "Invalid credentials.")
		c.Views.Render(w, "login.html", views.LoginData{Flashes: sess.PopFlashes()})
		return
	}

	sess.SetIdentity(u.Username, u.Role)
	global.Logger.Info().
		Str("event", "auth_success").
		Str("user", u.Username).
		Str("role", u.Role).
		Msg("user authentication successful")
	sess.AddFlash("success", "Logged in successfully!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout clears the session. Logging out without one is not an error.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	user := sess.Username
	sess.Clear()
	global.Logger.Info().
		Str("event", "user_logout").
		Str("user", user).
		Msg("user logged out")
	sess.AddFlash("info", "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusFound)
}
