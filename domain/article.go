package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID        int64     // Unique identifier for the article
	Title     string    // Article title
	Content   string    // Article body content
	User      User      // Author information
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp

	// CommentCount is a denormalized back-reference to the article's
	// comments, refreshed in batch after comment creation. Advisory only:
	// the comment table stays the source of truth and readers must
	// tolerate it lagging behind.
	CommentCount int64
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// Fetch retrieves a paginated list of articles.
	// cursor: pass the cursor from the previous page, or empty string for the first page.
	// num: number of articles to fetch per page.
	Fetch(ctx context.Context, cursor string, num int64) (res []Article, err error)

	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// GetByTitle retrieves an article by its title.
	GetByTitle(ctx context.Context, title string) (Article, error)

	// Store creates a new article in the repository.
	Store(ctx context.Context, a *Article) error

	// Update modifies an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, ar *Article) error

	// Delete removes an article by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error

	// RefreshCommentCounts recomputes the denormalized comment counters
	// for the given articles from the comment table.
	RefreshCommentCounts(ctx context.Context, articleIDs []int64) error

	// FetchIDs pages over all article IDs, used to seed the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// ArticleCache is the redis-backed read-through cache for single articles.
type ArticleCache interface {
	GetArticle(ctx context.Context, id int64) (Article, error)
	SetArticle(ctx context.Context, ar *Article) error
	DeleteArticle(ctx context.Context, id int64) error
}

type ArticleUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Article, string, error)
	GetByID(ctx context.Context, id int64) (Article, error)
	Store(ctx context.Context, ar *Article) error
	Update(ctx context.Context, ar *Article) error
	Delete(ctx context.Context, id int64) error
	InitBloomFilter(ctx context.Context) error
}
