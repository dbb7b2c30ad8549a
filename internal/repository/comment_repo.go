package repository

import (
	"context"
	"database/sql"
	"fmt"

	"techblog/internal/models"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

var _ Comments = (*CommentRepository)(nil)

const (
	insertCommentSQL = `INSERT INTO comments (content, author_id, blog_id) VALUES (?, ?, ?)`

	selectCommentsByBlogSQL = `SELECT cm.id, cm.content, cm.author_id, cm.blog_id, u.username ` +
		`FROM comments cm JOIN users u ON u.id = cm.author_id WHERE cm.blog_id = ? ORDER BY cm.id ASC`
)

// Create inserts a new comment and returns its ID. Foreign keys guarantee
// the referenced blog and user exist at insert time.
func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertCommentSQL, c.Content, c.AuthorID, c.BlogID)
	if err != nil {
		return 0, fmt.Errorf("insert comment on blog id=%d: %w", c.BlogID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for comment on blog id=%d: %w", c.BlogID, err)
	}
	return lastID, nil
}

// ListByBlog returns all comments on a blog in insertion order, with author
// usernames joined.
func (r *CommentRepository) ListByBlog(ctx context.Context, blogID int64) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, selectCommentsByBlogSQL, blogID)
	if err != nil {
		return nil, fmt.Errorf("list comments for blog id=%d: %w", blogID, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.BlogID, &c.AuthorName); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}
	return comments, nil
}
