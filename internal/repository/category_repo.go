package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"techblog/internal/models"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	insertCategorySQL       = `INSERT INTO categories (name) VALUES (?)`
	selectCategoryByIDSQL   = `SELECT id, name FROM categories WHERE id = ?`
	selectCategoryByNameSQL = `SELECT id, name FROM categories WHERE name = ?`
)

// GetOrCreate returns the category with the given name, creating it on first
// use. Names are globally unique; this is the only write path for categories.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, selectCategoryByNameSQL, name).Scan(&c.ID, &c.Name)
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("select category %q: %w", name, err)
	}

	res, err := r.db.ExecContext(ctx, insertCategorySQL, name)
	if err != nil {
		return nil, fmt.Errorf("insert category %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for category %q: %w", name, err)
	}
	return &models.Category{ID: id, Name: name}, nil
}

// GetByID fetches a category by primary key. Returns ErrNotFound on a miss.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, selectCategoryByIDSQL, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select category id=%d: %w", id, err)
	}
	return &c, nil
}
