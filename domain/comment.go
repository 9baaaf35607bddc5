package domain

import (
	"context"
	"strings"
	"time"
)

// CommentStatus is a two-state lifecycle tag. The only legal transition is
// Active -> Deleted; there is no undelete path.
type CommentStatus int8

const (
	CommentStatusActive CommentStatus = iota
	CommentStatusDeleted
)

func (s CommentStatus) String() string {
	switch s {
	case CommentStatusActive:
		return "ACTIVE"
	case CommentStatusDeleted:
		return "DELETED"
	default:
		return "UNKNOWN"
	}
}

// Report is a flag raised by one user against one comment.
// At most one report per (reporter, comment) pair may exist.
type Report struct {
	ReporterID int64     `json:"reporter_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// Comment domain model
type Comment struct {
	ID        int64         `json:"id"`
	ArticleID int64         `json:"article_id"`
	AuthorID  int64         `json:"author_id"`
	Content   string        `json:"content"`
	Status    CommentStatus `json:"status"`
	Reports   []Report      `json:"reports,omitempty"`
	CreatedAt time.Time     `json:"created_at"`

	// Author holds the comment author's public info, filled for presentation only
	Author *User `json:"author,omitempty"`
}

// Deleted reports whether the comment reached its terminal state.
func (c *Comment) Deleted() bool {
	return c.Status == CommentStatusDeleted
}

// MarkDeleted performs the one-way Active -> Deleted transition.
// Calling it on an already deleted comment changes nothing.
func (c *Comment) MarkDeleted() {
	c.Status = CommentStatusDeleted
}

// CanDelete is the authorization predicate for deletion: only the author
// may delete a comment, there is no administrative override.
func (c *Comment) CanDelete(userID int64) bool {
	return c.AuthorID == userID
}

// HasReportFrom reports whether reporterID already reported this comment.
func (c *Comment) HasReportFrom(reporterID int64) bool {
	for _, r := range c.Reports {
		if r.ReporterID == reporterID {
			return true
		}
	}
	return false
}

// ValidateContent checks the author supplied text. Content has no edit
// operation, so this is the only point where it is ever inspected.
func (c *Comment) ValidateContent() error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrBadParamInput
	}
	return nil
}

// CommentUsecase defines the business logic contract for comment operations.
type CommentUsecase interface {
	// Create persists a new comment for an existing article.
	// Returns ErrArticleNotFound if the article does not resolve and
	// ErrBadParamInput if the content is empty after trimming.
	Create(ctx context.Context, c *Comment) error

	// FetchByArticle returns the non-deleted comments of an article in
	// creation order, authors attached.
	FetchByArticle(ctx context.Context, articleID int64) ([]*Comment, error)

	// Delete soft-deletes a comment. Only the author may delete.
	Delete(ctx context.Context, commentID int64, userID int64) error

	// Report files an abuse report. One report per user per comment;
	// a repeated attempt returns ErrDuplicateReport.
	Report(ctx context.Context, commentID int64, userID int64, reason string) error
}

// CommentRepository defines the contract for comment data persistence.
type CommentRepository interface {
	// Store persists a new comment and backfills ID and CreatedAt.
	Store(ctx context.Context, c *Comment) error

	// GetByID retrieves a comment by identity, deleted ones included.
	// Deletion is a visibility flag, not a retrievability one.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// FetchByArticle returns an article's comments in creation order.
	// With excludeDeleted set, soft-deleted comments are omitted.
	FetchByArticle(ctx context.Context, articleID int64, excludeDeleted bool) ([]*Comment, error)

	// MarkDeleted flips the comment into its terminal state. Idempotent.
	MarkDeleted(ctx context.Context, id int64) error

	// AddReport appends a report as a single conditional write: it fails
	// with ErrDuplicateReport when the reporter already has an entry,
	// enforced at the storage layer so concurrent reports cannot race.
	AddReport(ctx context.Context, commentID int64, r Report) error
}
