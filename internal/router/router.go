// Package router wires the dashboard routes together.
package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lildude/athletedash/internal/handlers/admin"
	"github.com/lildude/athletedash/internal/handlers/athlete"
	"github.com/lildude/athletedash/internal/middleware"
	"github.com/lildude/athletedash/internal/sessions"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// New returns the server's handler. Everything under /dashboard requires a
// logged in admin.
func New(db *gorm.DB, log logrus.FieldLogger, store *sessions.Store, login *admin.Handler, athletes *athlete.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	r.HandleFunc("/healthz", healthz(db)).Methods(http.MethodGet)
	r.HandleFunc("/login", login.ShowLoginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", login.HandleLogin).Methods(http.MethodPost)
	r.HandleFunc("/logout", login.HandleLogout).Methods(http.MethodPost)
	r.Handle("/", http.RedirectHandler(athlete.ListURL, http.StatusFound)).Methods(http.MethodGet)

	d := r.PathPrefix("/dashboard").Subrouter()
	d.Use(middleware.RequireAuthentication(store))
	d.HandleFunc("/athletes", athletes.List).Methods(http.MethodGet)
	// create must be registered ahead of {id}.
	d.HandleFunc("/athlete/create", athletes.CreateGet).Methods(http.MethodGet)
	d.HandleFunc("/athlete/create", athletes.CreatePost).Methods(http.MethodPost)
	d.HandleFunc("/athlete/{id}", athletes.Detail).Methods(http.MethodGet)
	d.HandleFunc("/athlete/{id}/update", athletes.UpdateGet).Methods(http.MethodGet)
	d.HandleFunc("/athlete/{id}/update", athletes.UpdatePost).Methods(http.MethodPost)
	d.HandleFunc("/athlete/{id}/delete", athletes.DeletePost).Methods(http.MethodPost)
	d.HandleFunc("/athlete/{id}/history", athletes.History).Methods(http.MethodGet)

	return r
}

func healthz(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}
}
