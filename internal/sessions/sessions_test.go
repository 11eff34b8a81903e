package sessions

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewStoreEmptyKey(t *testing.T) {
	if _, err := NewStore(nil, true); err == nil {
		t.Error("expected an error for an empty key")
	}
}

func TestFlashes(t *testing.T) {
	store, err := NewStore(testKey, true)
	if err != nil {
		t.Fatal(err)
	}

	// Queue a flash on one response and carry its cookie to the next request.
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	rr := httptest.NewRecorder()
	if err := store.AddFlash(rr, req, FlashSuccess, "You have registered a new athlete"); err != nil {
		t.Fatal(err)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}
	if !cookies[0].Secure || !cookies[0].HttpOnly {
		t.Errorf("expected a secure, http only cookie, got %+v", cookies[0])
	}

	next := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	got, err := store.Flashes(httptest.NewRecorder(), next)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]string{FlashSuccess: {"You have registered a new athlete"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFlashesEmpty(t *testing.T) {
	store, err := NewStore(testKey, false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := store.Flashes(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no flashes, got %v", got)
	}
}
