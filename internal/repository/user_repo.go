package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"techblog/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, bio) VALUES (?, ?, ?)`
	selectUserByIDSQL       = `SELECT id, username, password_hash, bio FROM users WHERE id = ?`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, bio FROM users WHERE username = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash, bio string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, passwordHash, bio)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return lastID, nil
}

// GetByID fetches a user by primary key. Returns ErrNotFound on a miss.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id=%d", id))
}

// GetByUsername fetches a user by exact (case-sensitive) username.
// Returns ErrNotFound on a miss.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username), fmt.Sprintf("username=%q", username))
}

func (r *UserRepository) scanOne(row *sql.Row, key string) (*models.User, error) {
	var (
		u   models.User
		bio sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &bio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user %s: %w", key, err)
	}
	u.Bio = bio.String
	return &u, nil
}
