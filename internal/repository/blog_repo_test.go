package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"techblog/internal/models"
)

// Loose patterns for the squirrel-built listing queries; the fixed-shape
// statements are matched exactly via their consts.
const (
	countBlogsPattern = `SELECT COUNT\(\*\) FROM blogs b`
	listBlogsPattern  = `SELECT b\.id, b\.title, b\.content, b\.author_id, b\.category_id, u\.username, COALESCE\(c\.name, ''\) FROM blogs b`
)

func newMockBlogRepo(t *testing.T) (*BlogRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewBlogRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func blogRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id", "category_id", "username", "name"})
	for _, id := range ids {
		rows.AddRow(id, fmt.Sprintf("title %d", id), "content", 1, 2, "alice", "go")
	}
	return rows
}

func TestBlogRepository_Create(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertBlogSQL)).
		WithArgs("Hello", "world", int64(1), sql.NullInt64{Int64: 2, Valid: true}).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Create(context.Background(), &models.Blog{
		Title:      "Hello",
		Content:    "world",
		AuthorID:   1,
		CategoryID: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id=7, got %d", id)
	}
}

func TestBlogRepository_Create_WithoutCategoryStoresNull(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertBlogSQL)).
		WithArgs("Hello", "world", int64(1), sql.NullInt64{}).
		WillReturnResult(sqlmock.NewResult(8, 1))

	_, err := repo.Create(context.Background(), &models.Blog{Title: "Hello", Content: "world", AuthorID: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBlogRepository_GetByID(t *testing.T) {
	t.Run("found with null category", func(t *testing.T) {
		repo, mock, cleanup := newMockBlogRepo(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "title", "content", "author_id", "category_id", "username", "name"}).
			AddRow(3, "Hello", "world", 1, nil, "alice", "")
		mock.ExpectQuery(regexp.QuoteMeta(selectBlogByIDSQL)).
			WithArgs(int64(3)).
			WillReturnRows(rows)

		b, err := repo.GetByID(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.CategoryID != 0 || b.CategoryName != "" {
			t.Fatalf("expected uncategorized blog, got %+v", b)
		}
		if b.AuthorName != "alice" {
			t.Fatalf("expected joined author name, got %+v", b)
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := newMockBlogRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectBlogByIDSQL)).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 99)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBlogRepository_List_Unfiltered(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectQuery(countBlogsPattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))
	mock.ExpectQuery(listBlogsPattern).
		WillReturnRows(blogRows(11, 12, 13, 14, 15))

	page, err := repo.List(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 15 || page.Page != 2 || page.PageSize != models.BlogsPerPage {
		t.Fatalf("unexpected page metadata: %+v", page)
	}
	if len(page.Blogs) != 5 {
		t.Fatalf("expected 5 blogs, got %d", len(page.Blogs))
	}
	if !page.HasPrev() || page.HasNext() {
		t.Fatalf("expected last page, got HasPrev=%v HasNext=%v", page.HasPrev(), page.HasNext())
	}
}

func TestBlogRepository_List_PageBeyondEndIsEmptyNotError(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectQuery(countBlogsPattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(listBlogsPattern).
		WillReturnRows(blogRows())

	page, err := repo.List(context.Background(), "", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Blogs) != 0 {
		t.Fatalf("expected empty page, got %d blogs", len(page.Blogs))
	}
}

func TestBlogRepository_List_FilterMatchesLowercasedNeedle(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	needle := "%golang%"
	mock.ExpectQuery(countBlogsPattern).
		WithArgs(needle, needle, needle).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(listBlogsPattern).
		WithArgs(needle, needle, needle).
		WillReturnRows(blogRows(1))

	page, err := repo.List(context.Background(), "GoLang", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Blogs) != 1 {
		t.Fatalf("expected 1 blog, got %d", len(page.Blogs))
	}
}

func TestBlogRepository_List_ClampsPageToOne(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectQuery(countBlogsPattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(listBlogsPattern + `.*OFFSET 0`).
		WillReturnRows(blogRows(1))

	page, err := repo.List(context.Background(), "", -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("expected clamped page=1, got %d", page.Page)
	}
}

func TestBlogRepository_ListByAuthor(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectQuery(countBlogsPattern).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(listBlogsPattern).
		WithArgs(int64(1)).
		WillReturnRows(blogRows(1, 2))

	page, err := repo.ListByAuthor(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Blogs) != 2 {
		t.Fatalf("expected 2 blogs, got %d", len(page.Blogs))
	}
}

func TestBlogRepository_Update_MissingBlog(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(updateBlogSQL)).
		WithArgs("t", "c", sql.NullInt64{Int64: 2, Valid: true}, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, "t", "c", 2)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogRepository_Delete(t *testing.T) {
	repo, mock, cleanup := newMockBlogRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteBlogSQL)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
