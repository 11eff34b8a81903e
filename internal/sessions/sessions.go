// Package sessions wraps the cookie store that keeps dashboard logins and
// flash messages.
package sessions

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "admin-session"

// Session keys.
const (
	KeyAuthenticated = "authenticated"
	KeyUserID        = "user_id"
	KeyUsername      = "username"
)

// Flash kinds.
const (
	FlashSuccess = "success_msg"
	FlashError   = "error_msg"
)

// Store issues and reads the admin session cookie.
type Store struct {
	store *sessions.CookieStore
}

// NewStore returns a store signing cookies with key. Cookies are marked
// Secure unless dev is set.
func NewStore(key []byte, dev bool) (*Store, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("empty session key")
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600 * 8, // 8 hours
		HttpOnly: true,
		Secure:   !dev,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: store}, nil
}

// GetSession retrieves a session from the request.
func (s *Store) GetSession(r *http.Request) (*sessions.Session, error) {
	return s.store.Get(r, sessionName)
}

// SaveSession saves the session.
func (s *Store) SaveSession(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	return s.store.Save(r, w, session)
}

// AddFlash queues msg under kind for the next page the user sees.
func (s *Store) AddFlash(w http.ResponseWriter, r *http.Request, kind, msg string) error {
	session, err := s.GetSession(r)
	if err != nil {
		return err
	}
	session.AddFlash(msg, kind)
	return s.SaveSession(r, w, session)
}

// Flashes pops every queued flash message, keyed by kind.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) (map[string][]string, error) {
	session, err := s.GetSession(r)
	if err != nil {
		return nil, err
	}

	out := map[string][]string{}
	for _, kind := range []string{FlashSuccess, FlashError} {
		for _, f := range session.Flashes(kind) {
			if msg, ok := f.(string); ok {
				out[kind] = append(out[kind], msg)
			}
		}
	}
	if len(out) == 0 {
		return out, nil
	}
	return out, s.SaveSession(r, w, session)
}
