package models

// Category groups blogs under a unique name. Categories are created lazily
// by the first blog referencing an unseen name and never updated or deleted.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Blog is a single post. AuthorID is fixed at creation; title, content and
// category may be changed by the author only.
type Blog struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"` // markdown source
	AuthorID   int64  `json:"author_id"`
	CategoryID int64  `json:"category_id,omitempty"` // 0 = uncategorized

	// Denormalized for display, populated by joined reads.
	AuthorName   string `json:"author_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

// Comment is attached to a blog by an authenticated user. Comments are never
// edited or deleted individually; deleting a blog purges its comments.
type Comment struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id"`
	BlogID     int64  `json:"blog_id"`
	AuthorName string `json:"author_name,omitempty"`
}

// BlogsPerPage is the fixed page size for every blog listing.
const BlogsPerPage = 10

// BlogPage is one bounded slice of an ordered blog listing.
type BlogPage struct {
	Blogs    []Blog `json:"blogs"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Total    int    `json:"total"`
}

// TotalPages returns the number of pages needed to show Total results.
func (p BlogPage) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

func (p BlogPage) HasPrev() bool { return p.Page > 1 }

func (p BlogPage) HasNext() bool { return p.Page < p.TotalPages() }

func (p BlogPage) PrevPage() int { return p.Page - 1 }

func (p BlogPage) NextPage() int { return p.Page + 1 }
