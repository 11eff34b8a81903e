// Package admin handles dashboard logins.
package admin

import (
	"net/http"

	"github.com/lildude/athletedash/internal/auth"
	"github.com/lildude/athletedash/internal/database"
	"github.com/lildude/athletedash/internal/sessions"
	"github.com/lildude/athletedash/internal/views"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HomeURL is where a successful login lands.
const HomeURL = "/dashboard/athletes"

// Renderer writes a named page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Handler serves the login and logout routes.
type Handler struct {
	DB       *gorm.DB
	Views    Renderer
	Sessions *sessions.Store
	Log      logrus.FieldLogger
}

// ShowLoginForm displays the admin login page.
func (h *Handler) ShowLoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, http.StatusOK, "")
}

// HandleLogin processes the admin login attempt.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := database.GetAdminUser(r.Context(), h.DB, username)
	if err != nil {
		h.Log.WithError(err).Error("getting admin user")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if user == nil || !auth.CheckPasswordHash(password, user.PasswordHash) {
		h.Log.WithField("username", username).Warn("login failed")
		h.renderLogin(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session, err := h.Sessions.GetSession(r)
	if err != nil {
		// A cookie signed with an old key; start afresh.
		h.Log.WithError(err).Debug("discarding unreadable session")
	}

	session.Values[sessions.KeyAuthenticated] = true
	session.Values[sessions.KeyUserID] = user.ID
	session.Values[sessions.KeyUsername] = user.Username
	if err := h.Sessions.SaveSession(r, w, session); err != nil {
		h.Log.WithError(err).Error("saving session")
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	h.Log.WithField("username", user.Username).Info("admin logged in")
	http.Redirect(w, r, HomeURL, http.StatusSeeOther)
}

// HandleLogout logs the admin user out.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.GetSession(r)
	if err != nil {
		h.Log.WithError(err).Debug("discarding unreadable session")
	}

	delete(session.Values, sessions.KeyAuthenticated)
	delete(session.Values, sessions.KeyUserID)
	delete(session.Values, sessions.KeyUsername)
	session.Options.MaxAge = -1 // Expire cookie immediately

	if err := h.Sessions.SaveSession(r, w, session); err != nil {
		h.Log.WithError(err).Error("saving session")
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) renderLogin(w http.ResponseWriter, status int, msg string) {
	if err := h.Views.Render(w, status, views.Login, views.LoginPage{Error: msg}); err != nil {
		h.Log.WithError(err).Error("rendering login page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
