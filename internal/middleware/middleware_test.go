package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lildude/athletedash/internal/sessions"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func newStore(t *testing.T) *sessions.Store {
	t.Helper()
	store, err := sessions.NewStore([]byte("0123456789abcdef0123456789abcdef"), true)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

// loginCookies returns the cookies of a session holding values.
func loginCookies(t *testing.T, store *sessions.Store, values map[any]any) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rr := httptest.NewRecorder()
	session, err := store.GetSession(req)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range values {
		session.Values[k] = v
	}
	if err := store.SaveSession(req, rr, session); err != nil {
		t.Fatal(err)
	}
	return rr.Result().Cookies()
}

func TestRequireAuthentication(t *testing.T) {
	store := newStore(t)

	tests := []struct {
		name       string
		values     map[any]any
		wantStatus int
		wantUserID string
	}{
		{"no session", nil, http.StatusFound, ""},
		{"not authenticated", map[any]any{sessions.KeyAuthenticated: false, sessions.KeyUserID: "u1"}, http.StatusFound, ""},
		{"missing user id", map[any]any{sessions.KeyAuthenticated: true}, http.StatusFound, ""},
		{"authenticated", map[any]any{sessions.KeyAuthenticated: true, sessions.KeyUserID: "u1"}, http.StatusOK, "u1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID = UserID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/dashboard/athletes", http.NoBody)
			if tc.values != nil {
				for _, c := range loginCookies(t, store, tc.values) {
					req.AddCookie(c)
				}
			}
			rr := httptest.NewRecorder()
			RequireAuthentication(store)(next).ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if tc.wantStatus == http.StatusFound && rr.Header().Get("Location") != "/login" {
				t.Errorf("expected redirect to /login, got %q", rr.Header().Get("Location"))
			}
			if gotUserID != tc.wantUserID {
				t.Errorf("expected user id %q, got %q", tc.wantUserID, gotUserID)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	log, hook := test.NewNullLogger()

	tests := []struct {
		name      string
		status    int
		wantLevel logrus.Level
	}{
		{"ok", http.StatusOK, logrus.InfoLevel},
		{"not found", http.StatusNotFound, logrus.WarnLevel},
		{"server error", http.StatusInternalServerError, logrus.ErrorLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hook.Reset()
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			rr := httptest.NewRecorder()
			RequestLogger(log)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard/athletes", http.NoBody))

			entry := hook.LastEntry()
			if entry == nil {
				t.Fatal("expected a log entry")
			}
			if entry.Level != tc.wantLevel {
				t.Errorf("expected level %v, got %v", tc.wantLevel, entry.Level)
			}
			if entry.Data["status"] != tc.status || entry.Data["path"] != "/dashboard/athletes" {
				t.Errorf("unexpected fields: %v", entry.Data)
			}
		})
	}
}
