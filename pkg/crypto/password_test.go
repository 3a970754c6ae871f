package crypto

import (
	"strings"
	"testing"
)

func TestArgon2_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "success", password: "testPassword123", wantErr: false},
		{name: "empty password", password: "", wantErr: false},
		{name: "long password", password: strings.Repeat("a", 128), wantErr: false},
		{name: "special chars", password: "p@ssw0rd!#$%", wantErr: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()

			// Act
			hash, err := a.Hash(test.password)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("Hash() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr {
				if hash == "" {
					t.Error("Hash() returned empty hash")
				}
				if !strings.HasPrefix(hash, "$argon2id$") {
					t.Error("Hash() should start with $argon2id$")
				}
				if len(strings.Split(hash, "$")) != 6 {
					t.Error("Hash() should have 6 parts")
				}
			}
		})
	}
}

func TestArgon2_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	a := NewArgon2()
	password := "samePassword"

	// Act
	hash1, _ := a.Hash(password)
	hash2, _ := a.Hash(password)

	// Assert
	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes with unique salts")
	}
}

// Requirement: Verify preserves exact-match comparison outcomes - the same
// (stored, attempted) pair always yields the same success or failure.
func TestArgon2_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		wantOk   bool
	}{
		{name: "correct password", password: "Passw0rd", attempt: "Passw0rd", wantOk: true},
		{name: "wrong password", password: "Passw0rd", attempt: "wrongPassword", wantOk: false},
		{name: "case sensitive", password: "Passw0rd", attempt: "passw0rd", wantOk: false},
		{name: "extra character", password: "Passw0rd", attempt: "Passw0rd1", wantOk: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()
			hash, _ := a.Hash(test.password)

			// Act
			ok, err := a.Verify(test.attempt, hash)

			// Assert
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if ok != test.wantOk {
				t.Errorf("Verify() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}

func TestArgon2_Verify_InvalidHashes(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "invalid format", hash: "invalid-hash"},
		{name: "too few parts", hash: "$argon2id$v=19$m=65536,t=3,p=2$salt"},
		{name: "unsupported algorithm", hash: "$argon2i$v=19$m=65536,t=3,p=2$salt$hash"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()

			// Act
			_, err := a.Verify("password", test.hash)

			// Assert
			if err == nil {
				t.Errorf("Verify() should return error for %s", test.name)
			}
		})
	}
}
