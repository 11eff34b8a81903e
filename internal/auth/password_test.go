package auth

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret" {
		t.Error("expected hash to differ from the password")
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"matching password", "s3cret", true},
		{"wrong password", "secret", false},
		{"empty password", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckPasswordHash(tc.password, hash); got != tc.want {
				t.Errorf("CheckPasswordHash(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("expected an error for an empty password")
	}
}
