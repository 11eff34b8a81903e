// Package athlete implements the dashboard's athlete pages: list, detail,
// create, update, delete and weight history.
package athlete

import (
	"context"
	"errors"
	"net/http"

	"github.com/lildude/athletedash/internal/cache"
	"github.com/lildude/athletedash/internal/database"
	"github.com/lildude/athletedash/internal/sessions"
	"github.com/lildude/athletedash/internal/views"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Renderer writes a named page.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Handler serves the athlete pages.
type Handler struct {
	DB       *gorm.DB
	Views    Renderer
	Sessions *sessions.Store
	Log      logrus.FieldLogger

	// OrgNames caches organization names by id. Optional.
	OrgNames cache.Cache

	// CascadeDelete removes an athlete's weight records along with the athlete.
	CascadeDelete bool
}

// requestError is a failure caused by the request rather than the server.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &requestError{status: http.StatusBadRequest, msg: msg}
}

// fail logs err and renders the error page with a status derived from it.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, "Something went wrong. Please try again."
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		status, msg = reqErr.status, reqErr.msg
	case errors.Is(err, gorm.ErrRecordNotFound):
		status, msg = http.StatusNotFound, "The requested record could not be found."
	case errors.Is(err, database.ErrNoOrg):
		status, msg = http.StatusForbidden, "You are not the administrator of an organization."
	}

	entry := h.Log.WithError(err).WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path, "status": status})
	if status >= http.StatusInternalServerError {
		entry.Error("athlete request failed")
	} else {
		entry.Warn("athlete request failed")
	}

	page := views.ErrorPage{Page: views.Page{Title: http.StatusText(status)}, Message: msg}
	if err := h.Views.Render(w, status, views.Error, page); err != nil {
		h.Log.WithError(err).Error("rendering error page")
		http.Error(w, http.StatusText(status), status)
	}
}

// page returns the shared page data, consuming any pending flash messages.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, title string) views.Page {
	p := views.Page{Title: title}
	if h.Sessions == nil {
		return p
	}
	flashes, err := h.Sessions.Flashes(w, r)
	if err != nil {
		h.Log.WithError(err).Warn("reading flash messages")
	}
	p.Flashes = flashes
	return p
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	if err := h.Views.Render(w, status, name, data); err != nil {
		h.Log.WithError(err).WithField("page", name).Error("rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, kind, msg string) {
	if h.Sessions == nil {
		return
	}
	if err := h.Sessions.AddFlash(w, r, kind, msg); err != nil {
		h.Log.WithError(err).Warn("saving flash message")
	}
}

func orgCacheKey(orgID string) string {
	return "org:" + orgID + ":name"
}

// orgName looks up the name of an organization, consulting the cache first
// when one is configured. Cache failures fall through to the database.
func (h *Handler) orgName(ctx context.Context, orgID string) (string, error) {
	if orgID == "" {
		return "", nil
	}

	key := orgCacheKey(orgID)
	if h.OrgNames != nil {
		name, err := h.OrgNames.Get(ctx, key)
		if err != nil {
			h.Log.WithError(err).WithField("org_id", orgID).Warn("reading org name from cache")
		} else if name != "" {
			return name, nil
		}
	}

	name, err := database.GetOrgName(ctx, h.DB, orgID)
	if err != nil {
		return "", err
	}

	if h.OrgNames != nil {
		if err := h.OrgNames.Set(ctx, key, name); err != nil {
			h.Log.WithError(err).WithField("org_id", orgID).Warn("caching org name")
		}
	}
	return name, nil
}
