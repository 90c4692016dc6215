// Package identity implements registration and login against the users table.
//
// There is no session or token management: [Service.Authenticate] returns a
// read-only [models.UserView] that the caller holds as its authenticated
// identity for the remainder of the process.
package identity

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/softsholm/cadenza/internal/models"
	"github.com/softsholm/cadenza/internal/shared"
)

// Service performs identity operations. It holds the process-wide database
// handle; every operation is a single short-lived query or transaction.
type Service struct {
	db *sql.DB
}

// NewService creates a new [Service] with the given database connection
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// HashCredential returns the hex-encoded SHA-256 digest of a plaintext
// credential.
//
// This is an unsalted single-round digest and is not suitable for a
// production credential store. It is kept as the stored format so existing
// databases keep working; swapping in a salted slow hash only requires
// changing this function and re-digesting stored rows.
func HashCredential(credential string) string {
	sum := sha256.Sum256([]byte(credential))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user and returns its id.
//
// Fails with [shared.ErrDuplicateIdentity] when the username or the email is
// already taken. The uniqueness check and the insert share one transaction;
// the unique indexes on users(username) and users(email) are the backstop
// for writers racing between the two statements.
func (s *Service) Register(ctx context.Context, username, email, credential string) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", shared.StorageError(err))
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = ? OR email = ?)",
		username, email,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing users: %w", shared.StorageError(err))
	}
	if exists {
		return 0, fmt.Errorf("register %q: %w", username, shared.ErrDuplicateIdentity)
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO users (username, email, credential_digest) VALUES (?, ?, ?)",
		username, email, HashCredential(credential),
	)
	if err != nil {
		if shared.IsUniqueViolation(err) {
			return 0, fmt.Errorf("register %q: %w", username, shared.ErrDuplicateIdentity)
		}
		return 0, fmt.Errorf("failed to insert user: %w", shared.StorageError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new user id: %w", shared.StorageError(err))
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit registration: %w", shared.StorageError(err))
	}

	return id, nil
}

// Authenticate verifies a username/credential pair and returns the user view.
//
// An unknown username and a wrong credential both fail with
// [shared.ErrInvalidCredentials]; the single outcome avoids leaking which
// usernames exist.
func (s *Service) Authenticate(ctx context.Context, username, credential string) (models.UserView, error) {
	var view models.UserView
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, is_admin FROM users WHERE username = ? AND credential_digest = ?",
		username, HashCredential(credential),
	).Scan(&view.ID, &view.Username, &view.Email, &view.IsAdmin)
	if err == sql.ErrNoRows {
		return models.UserView{}, fmt.Errorf("authenticate: %w", shared.ErrInvalidCredentials)
	}
	if err != nil {
		return models.UserView{}, fmt.Errorf("failed to query user: %w", shared.StorageError(err))
	}

	return view, nil
}

// GetUser retrieves a user view by id, failing with [shared.ErrNotFound]
// when no such user exists.
func (s *Service) GetUser(ctx context.Context, id int64) (models.UserView, error) {
	var view models.UserView
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, is_admin FROM users WHERE id = ?",
		id,
	).Scan(&view.ID, &view.Username, &view.Email, &view.IsAdmin)
	if err == sql.ErrNoRows {
		return models.UserView{}, fmt.Errorf("user %d: %w", id, shared.ErrNotFound)
	}
	if err != nil {
		return models.UserView{}, fmt.Errorf("failed to query user: %w", shared.StorageError(err))
	}

	return view, nil
}
