package sanitize

import (
	"testing"
	"time"
)

func TestEscapeTrim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  Ann  ", "Ann"},
		{"<b>Ann</b>", "&lt;b&gt;Ann&lt;/b&gt;"},
		{" Tom & Jerry ", "Tom &amp; Jerry"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := EscapeTrim(tc.in); got != tc.want {
				t.Errorf("EscapeTrim(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	want := time.Date(2006, time.May, 4, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{"iso date", "2006-05-04", &want},
		{"us date", "05/04/2006", &want},
		{"rfc3339", "2006-05-04T15:04:05Z", &want},
		{"padded", " 2006-05-04 ", &want},
		{"blank", "", nil},
		{"garbage", "last tuesday", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Date(tc.in)
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("Date(%q) = %v, want nil", tc.in, got)
			case tc.want != nil && (got == nil || !got.Equal(*tc.want)):
				t.Errorf("Date(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"wrestling", "Wrestling"},
		{"cross country", "Cross country"},
		{"Track", "Track"},
		{"ébène", "Ébène"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := Capitalize(tc.in); got != tc.want {
				t.Errorf("Capitalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCheckbox(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"on", true},
		{"ON", true},
		{"true", true},
		{"1", true},
		{"false", false},
		{"nope", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := Checkbox(tc.in); got != tc.want {
				t.Errorf("Checkbox(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
