package marquee

import (
	"errors"
	"testing"

	"github.com/marquee-app/marquee/store/memory"
)

// Requirement: New requires a store and defaults the password hasher.
func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "missing store", config: Config{}, wantErr: ErrStoreRequired},
		{name: "store only", config: Config{Store: memory.New()}},
		{name: "explicit hasher", config: Config{Store: memory.New(), PasswordHasher: NewArgon2()}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			identity, err := New(test.config)

			// Assert
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil && identity == nil {
				t.Fatal("New() returned nil identity")
			}
		})
	}
}

// Requirement: the facade exposes a working identity module end to end.
func TestNew_Roundtrip(t *testing.T) {
	// Arrange
	identity, err := New(Config{Store: memory.New()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Act
	if _, err := identity.Register("A", "a@x.com", "Passw0rd"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := identity.Login("a@x.com", "Passw0rd"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := identity.AddToList("tt0111161"); err != nil {
		t.Fatalf("AddToList() error = %v", err)
	}

	// Assert
	if !identity.IsInList("tt0111161") {
		t.Error("IsInList() = false, want true")
	}
}
