package core

import (
	"testing"

	"github.com/marquee-app/marquee/pkg/crypto"
)

// Requirement: a persisted session (snapshot + token) is restored at
// construction; the watch list survives a process restart.
func TestIdentity_SessionRestore_RoundTrip(t *testing.T) {
	// Arrange: a first "process" logs in and saves a list entry
	store := NewFakeStore()
	first := newTestIdentity(store)
	_, _ = first.Register("A", "a@x.com", "Passw0rd")
	if _, err := first.Login("a@x.com", "Passw0rd"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := first.AddToList("tt1"); err != nil {
		t.Fatalf("AddToList() error = %v", err)
	}

	// Act: a fresh identity over the same store
	second := NewIdentity(store, crypto.NewArgon2())

	// Assert
	if !second.LoggedIn() {
		t.Fatal("restored identity should be authenticated")
	}
	if !second.IsInList("tt1") {
		t.Error("restored session should carry the watch list")
	}
	if second.Token() != first.Token() {
		t.Error("restored session should carry the same token")
	}
}

// Requirement: re-login after logout still finds the persisted list.
func TestIdentity_SessionRestore_AfterLogout(t *testing.T) {
	// Arrange
	store := NewFakeStore()
	first := newTestIdentity(store)
	_, _ = first.Register("A", "a@x.com", "Passw0rd")
	if _, err := first.Login("a@x.com", "Passw0rd"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := first.AddToList("tt1"); err != nil {
		t.Fatalf("AddToList() error = %v", err)
	}
	if err := first.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	// Act: fresh start with existing storage, then re-login
	second := NewIdentity(store, crypto.NewArgon2())
	if second.LoggedIn() {
		t.Fatal("identity should be anonymous after logout, even across restarts")
	}
	if _, err := second.Login("a@x.com", "Passw0rd"); err != nil {
		t.Fatalf("re-Login() error = %v", err)
	}

	// Assert
	if !second.IsInList("tt1") {
		t.Error("watch list should survive logout and re-login")
	}
}

// Requirement: a partial session at startup (either key missing, or an
// unparseable snapshot) resolves to anonymous.
func TestIdentity_SessionRestore_Partial(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*FakeStore)
	}{
		{
			name: "snapshot without token",
			setup: func(store *FakeStore) {
				_ = store.Set(KeyCurrentUser, []byte(`{"id":"1","email":"a@x.com","myList":[]}`))
			},
		},
		{
			name: "token without snapshot",
			setup: func(store *FakeStore) {
				_ = store.Set(KeyAuthToken, []byte("some-token"))
			},
		},
		{
			name: "corrupt snapshot",
			setup: func(store *FakeStore) {
				_ = store.Set(KeyCurrentUser, []byte("{not json"))
				_ = store.Set(KeyAuthToken, []byte("some-token"))
			},
		},
		{
			name: "empty token",
			setup: func(store *FakeStore) {
				_ = store.Set(KeyCurrentUser, []byte(`{"id":"1","email":"a@x.com","myList":[]}`))
				_ = store.Set(KeyAuthToken, []byte(""))
			},
		},
		{
			name:  "nothing persisted",
			setup: func(store *FakeStore) {},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			store := NewFakeStore()
			test.setup(store)

			// Act
			identity := NewIdentity(store, crypto.NewArgon2())

			// Assert
			if identity.LoggedIn() {
				t.Error("partial session should resolve to anonymous")
			}
			if identity.Current() != nil {
				t.Error("Current() should be nil while anonymous")
			}
		})
	}
}
