package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CreateUser inserts a new team member with the given role.
func (s *Store) CreateUser(ctx context.Context, email string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("user email required")
	}
	if _, ok := ParseRole(string(role)); !ok {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	id := uuid.NewString()
	_, err := s.execWithRetry(
		ctx,
		`INSERT INTO users (id, email, role) VALUES (?, ?, ?)`,
		id,
		email,
		role,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &User{ID: id, Email: email, Role: role}, nil
}

// GetUser fetches a user by identifier. A missing user returns (nil, nil).
func (s *Store) GetUser(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, email, role FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// FindUserByEmail fetches a user by email. A missing user returns (nil, nil).
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := s.db.QueryRowContext(ctx, `SELECT id, email, role FROM users WHERE email = ?`, email)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ListUsers returns all users ordered by email.
func (s *Store) ListUsers(ctx context.Context) ([]*User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, email, role FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func scanUser(scanner interface{ Scan(dest ...any) error }) (*User, error) {
	var (
		id    string
		email string
		role  string
	)
	if err := scanner.Scan(&id, &email, &role); err != nil {
		return nil, err
	}
	return &User{ID: id, Email: email, Role: Role(role)}, nil
}
