package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/softsholm/cadenza/internal/shared"
	helpers "github.com/softsholm/cadenza/internal/testing"
)

func TestRegisterAuthenticateRoundTrip(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "alice@x.com", "pw1")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if id == 0 {
		t.Error("expected a nonzero user id")
	}

	view, err := svc.Authenticate(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("failed to authenticate: %v", err)
	}

	if view.ID != id {
		t.Errorf("expected id %d, got %d", id, view.ID)
	}
	if view.Username != "alice" {
		t.Errorf("expected username alice, got %s", view.Username)
	}
	if view.Email != "alice@x.com" {
		t.Errorf("expected email alice@x.com, got %s", view.Email)
	}
	if view.IsAdmin {
		t.Error("new users should not be admins")
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@x.com", "pw1"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	t.Run("same username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other@x.com", "pw2")
		if !errors.Is(err, shared.ErrDuplicateIdentity) {
			t.Errorf("expected ErrDuplicateIdentity, got %v", err)
		}
	})

	t.Run("same email", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob", "alice@x.com", "pw2")
		if !errors.Is(err, shared.ErrDuplicateIdentity) {
			t.Errorf("expected ErrDuplicateIdentity, got %v", err)
		}
	})

	if n := helpers.CountRows(t, db, "users"); n != 1 {
		t.Errorf("expected 1 user row after failed registrations, got %d", n)
	}
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@x.com", "pw1"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	// Wrong password and unknown user fail identically, so a caller
	// cannot probe which usernames exist.
	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrongpw")
		if !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "mallory", "pw1")
		if !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestGetUser(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "alice@x.com", "pw1")
	if err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	view, err := svc.GetUser(ctx, id)
	if err != nil {
		t.Fatalf("failed to get user: %v", err)
	}
	if view.Username != "alice" {
		t.Errorf("expected username alice, got %s", view.Username)
	}

	if _, err := svc.GetUser(ctx, id+100); !errors.Is(err, shared.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHashCredential(t *testing.T) {
	// Stored digests are unsalted SHA-256 hex; the digest of "password"
	// is a fixed value that existing databases depend on.
	want := "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
	if got := HashCredential("password"); got != want {
		t.Errorf("HashCredential() = %v, want %v", got, want)
	}

	if HashCredential("a") == HashCredential("b") {
		t.Error("distinct credentials should not share a digest")
	}
}
