package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"techblog/internal/models"
)

type BlogRepository struct {
	db *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

var _ Blogs = (*BlogRepository)(nil)

const (
	insertBlogSQL = `INSERT INTO blogs (title, content, author_id, category_id) VALUES (?, ?, ?, ?)`
	updateBlogSQL = `UPDATE blogs SET title = ?, content = ?, category_id = ? WHERE id = ?`
	deleteBlogSQL = `DELETE FROM blogs WHERE id = ?`

	selectBlogByIDSQL = `SELECT b.id, b.title, b.content, b.author_id, b.category_id, u.username, COALESCE(c.name, '') ` +
		`FROM blogs b JOIN users u ON u.id = b.author_id LEFT JOIN categories c ON c.id = b.category_id WHERE b.id = ?`
)

// Create inserts a new blog and returns its ID. A zero CategoryID is stored
// as NULL.
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertBlogSQL, b.Title, b.Content, b.AuthorID, nullableID(b.CategoryID))
	if err != nil {
		return 0, fmt.Errorf("insert blog %q: %w", b.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for blog %q: %w", b.Title, err)
	}
	return lastID, nil
}

// GetByID fetches a blog with its author username and category name joined.
// Returns ErrNotFound on a miss.
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	b, err := scanBlog(r.db.QueryRowContext(ctx, selectBlogByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select blog id=%d: %w", id, err)
	}
	return b, nil
}

// Update rewrites title, content and category of an existing blog. The
// author column is deliberately not part of the statement.
func (r *BlogRepository) Update(ctx context.Context, id int64, title, content string, categoryID int64) error {
	res, err := r.db.ExecContext(ctx, updateBlogSQL, title, content, nullableID(categoryID), id)
	if err != nil {
		return fmt.Errorf("update blog id=%d: %w", id, err)
	}
	return requireRow(res, id)
}

// Delete removes a blog. Its comments are purged by the ON DELETE CASCADE
// constraint on the comments table.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteBlogSQL, id)
	if err != nil {
		return fmt.Errorf("delete blog id=%d: %w", id, err)
	}
	return requireRow(res, id)
}

// List returns one page of blogs, optionally narrowed by a case-insensitive
// substring filter over title, content and category name.
func (r *BlogRepository) List(ctx context.Context, filter string, page int) (models.BlogPage, error) {
	var where sq.Sqlizer
	if filter != "" {
		needle := "%" + strings.ToLower(filter) + "%"
		where = sq.Or{
			sq.Like{"LOWER(b.title)": needle},
			sq.Like{"LOWER(b.content)": needle},
			sq.Like{"LOWER(c.name)": needle},
		}
	}
	return r.listPage(ctx, where, page)
}

// ListByAuthor returns one page of a single author's blogs.
func (r *BlogRepository) ListByAuthor(ctx context.Context, authorID int64, page int) (models.BlogPage, error) {
	return r.listPage(ctx, sq.Eq{"b.author_id": authorID}, page)
}

// listPage runs the shared count+select pair for a listing. Pages are
// 1-indexed and clamped to ≥1; a page past the end yields an empty slice,
// not an error.
func (r *BlogRepository) listPage(ctx context.Context, where sq.Sqlizer, page int) (models.BlogPage, error) {
	if page < 1 {
		page = 1
	}

	countQ := sq.Select("COUNT(*)").
		From("blogs b").
		Join("users u ON u.id = b.author_id").
		LeftJoin("categories c ON c.id = b.category_id")
	listQ := sq.Select(
		"b.id", "b.title", "b.content", "b.author_id", "b.category_id",
		"u.username", "COALESCE(c.name, '')",
	).
		From("blogs b").
		Join("users u ON u.id = b.author_id").
		LeftJoin("categories c ON c.id = b.category_id")
	if where != nil {
		countQ = countQ.Where(where)
		listQ = listQ.Where(where)
	}

	result := models.BlogPage{Page: page, PageSize: models.BlogsPerPage}

	query, args, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build blog count query: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&result.Total); err != nil {
		return result, fmt.Errorf("count blogs: %w", err)
	}

	query, args, err = listQ.
		OrderBy("b.id ASC").
		Limit(uint64(models.BlogsPerPage)).
		Offset(uint64((page - 1) * models.BlogsPerPage)).
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build blog list query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return result, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return result, fmt.Errorf("scan blog row: %w", err)
		}
		result.Blogs = append(result.Blogs, *b)
	}
	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("iterate blog rows: %w", err)
	}
	return result, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBlog(s scanner) (*models.Blog, error) {
	var (
		b     models.Blog
		catID sql.NullInt64
	)
	if err := s.Scan(&b.ID, &b.Title, &b.Content, &b.AuthorID, &catID, &b.AuthorName, &b.CategoryName); err != nil {
		return nil, err
	}
	b.CategoryID = catID.Int64
	return &b, nil
}

func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for blog id=%d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
