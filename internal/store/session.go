package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Login records the given user as the session owner, replacing any previous
// session.
func (s *Store) Login(ctx context.Context, userID string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("login: no user with id %q", userID)
	}
	_, err = s.execWithRetry(
		ctx,
		`INSERT INTO session (id, user_id) VALUES (1, ?)
         ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// CurrentUser returns the session owner, or (nil, nil) when nobody is logged
// in.
func (s *Store) CurrentUser(ctx context.Context) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT u.id, u.email, u.role FROM session s JOIN users u ON u.id = s.user_id WHERE s.id = 1`)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// Logout clears the session. Logging out with no active session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
