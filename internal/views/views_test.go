package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lildude/athletedash/internal/model"
)

func TestRender(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		page   string
		status int
		data   any
		want   []string
	}{
		{
			name:   "error page",
			page:   Error,
			status: http.StatusNotFound,
			data:   ErrorPage{Page: Page{Title: "Not Found"}, Message: "no such athlete"},
			want:   []string{"<title>Not Found</title>", "no such athlete"},
		},
		{
			name:   "flashes",
			page:   Error,
			status: http.StatusOK,
			data: ErrorPage{Page: Page{
				Title:   "Oops",
				Flashes: map[string][]string{"success_msg": {"saved"}, "error_msg": {"broken"}},
			}},
			want: []string{`<p class="flash success">saved</p>`, `<p class="flash error">broken</p>`},
		},
		{
			name:   "login with error",
			page:   Login,
			status: http.StatusOK,
			data:   LoginPage{Error: "Invalid credentials"},
			want:   []string{"Invalid credentials", `action="/login"`},
		},
		{
			name:   "stored names are escaped once",
			page:   AthleteForm,
			status: http.StatusOK,
			data: struct {
				Page
				Athlete           *model.Athlete
				Genders, Errors   []string
				Action            string
				Create            bool
				GradYear, BodyFat string
			}{
				Page:     Page{Title: "D&#39;Andre", Flashes: map[string][]string{"success_msg": {"Deleted O&#39;Neil, D&#39;Andre."}}},
				Athlete:  &model.Athlete{FirstName: "D&#39;Andre", LastName: "O&amp;Neil"},
				GradYear: "20x6",
			},
			want: []string{
				`name="fname" value="D&#39;Andre"`,
				`name="lname" value="O&amp;Neil"`,
				`name="gradyr" value="20x6"`,
				"<title>D&#39;Andre</title>",
				"Deleted O&#39;Neil, D&#39;Andre.",
			},
		},
		{
			name:   "escapes data",
			page:   Error,
			status: http.StatusInternalServerError,
			data:   ErrorPage{Page: Page{Title: "x"}, Message: "<script>alert(1)</script>"},
			want:   []string{"&lt;script&gt;"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			if err := r.Render(rr, tc.status, tc.page, tc.data); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rr.Code != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("unexpected content type %q", ct)
			}
			for _, want := range tc.want {
				if !strings.Contains(rr.Body.String(), want) {
					t.Errorf("expected body to contain %q, got:\n%s", want, rr.Body.String())
				}
			}
			if strings.Contains(rr.Body.String(), "&amp;#39;") {
				t.Errorf("expected no double escaping, got:\n%s", rr.Body.String())
			}
		})
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	// The list page needs an Athletes field.
	err = r.Render(rr, http.StatusOK, AthleteList, ErrorPage{Page: Page{Title: "x"}})
	if err == nil {
		t.Fatal("expected an error")
	}
	if rr.Body.Len() != 0 {
		t.Errorf("expected nothing written, got %q", rr.Body.String())
	}

	if err := r.Render(rr, http.StatusOK, "missing.html", nil); err == nil {
		t.Error("expected an error for an unknown page")
	}
}

func TestFuncs(t *testing.T) {
	date := funcMap["date"].(func(*time.Time) string)
	d := time.Date(2006, time.May, 4, 0, 0, 0, 0, time.UTC)
	if got := date(&d); got != "05/04/2006" {
		t.Errorf("expected 05/04/2006, got %q", got)
	}
	if got := date(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}

	unescape := funcMap["unescape"].(func(string) string)
	if got := unescape("D&#39;Andre &amp; O&#39;Neil"); got != "D'Andre & O'Neil" {
		t.Errorf("unexpected unescape output %q", got)
	}

	yesno := funcMap["yesno"].(func(bool) string)
	if yesno(true) != "Yes" || yesno(false) != "No" {
		t.Error("unexpected yesno output")
	}
}
