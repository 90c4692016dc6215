package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/softsholm/cadenza/internal/identity"
	"github.com/softsholm/cadenza/internal/shared"
	"github.com/urfave/cli/v3"
)

// UsersRegister creates a new account from command line flags.
func (r *Runner) UsersRegister(ctx context.Context, cmd *cli.Command) error {
	username := strings.TrimSpace(cmd.String("username"))
	email := strings.TrimSpace(cmd.String("email"))
	password := cmd.String("password")

	if username == "" || email == "" || password == "" {
		return fmt.Errorf("%w: username, email, and password must be non-empty", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	svc := identity.NewService(db)
	id, err := svc.Register(ctx, username, email, password)
	if err != nil {
		if errors.Is(err, shared.ErrDuplicateIdentity) {
			return fmt.Errorf("registration failed: username or email already taken")
		}
		return fmt.Errorf("registration failed: %w", err)
	}

	r.logger.Info("account created", "username", username, "id", id)
	r.writePlain("✓ account created: %s (id %d)\n", username, id)
	return nil
}

// UsersLogin verifies credentials and prints the account profile.
func (r *Runner) UsersLogin(ctx context.Context, cmd *cli.Command) error {
	username := strings.TrimSpace(cmd.String("username"))
	password := cmd.String("password")
	useJSON := cmd.Bool("json")

	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password must be non-empty", shared.ErrMissingArgument)
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	svc := identity.NewService(db)
	user, err := svc.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			return fmt.Errorf("login failed: invalid username or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	if useJSON {
		return r.writeJSON(user, true)
	}

	r.writePlain("✓ signed in as %s\n", user.Username)
	r.writePlain("id:    %d\n", user.ID)
	r.writePlain("email: %s\n", user.Email)
	if user.IsAdmin {
		r.writePlain("role:  admin\n")
	}
	return nil
}
