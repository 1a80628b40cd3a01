package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/tdelossantos15/Fab-and-Fierce-Ecom/models"
)

const userColumns = "id, username, email, password_hash, created_at, is_active"

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
	IsActive *bool
}

type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

func (s *Users) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	var u models.User
	err := s.db.QueryRowContext(ctx, query, username, email, passwordHash).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.IsActive,
	)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("store: failed to insert user: %w", err)
	}
	return &u, nil
}

func (s *Users) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.getBy(ctx, "id = $1", id)
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getBy(ctx, "email = $1", email)
}

func (s *Users) getBy(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	var u models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to select user: %w", err)
	}
	return &u, nil
}

func (s *Users) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.IsActive); err != nil {
			return nil, fmt.Errorf("store: failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: error iterating users: %w", err)
	}
	return users, nil
}

func (s *Users) Update(ctx context.Context, id int, patch UserPatch) (*models.User, error) {
	// Build the SET clause from the fields actually present.
	query := "UPDATE users SET "
	args := []interface{}{}
	argIndex := 1

	if patch.Username != nil {
		query += "username = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, *patch.Username)
		argIndex++
	}
	if patch.Email != nil {
		query += "email = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, *patch.Email)
		argIndex++
	}
	if patch.Password != nil {
		query += "password_hash = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, *patch.Password)
		argIndex++
	}
	if patch.IsActive != nil {
		query += "is_active = $" + strconv.Itoa(argIndex) + ", "
		args = append(args, *patch.IsActive)
		argIndex++
	}

	if len(args) == 0 {
		// Empty patch is a no-op; return the current row.
		return s.GetByID(ctx, id)
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(argIndex) + " RETURNING " + userColumns
	args = append(args, id)

	var u models.User
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if cerr := constraintError(err); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("store: failed to update user %d: %w", id, err)
	}
	return &u, nil
}

func (s *Users) Delete(ctx context.Context, id int) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if cerr := constraintError(err); cerr != nil {
			return false, cerr
		}
		return false, fmt.Errorf("store: failed to delete user %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}
