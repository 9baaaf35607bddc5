package domain

import "context"

// CommentIndexWorker maintains the denormalized article comment counters
// in the background. Enqueue is fire-and-forget: a failed or dropped task
// only leaves the advisory counter stale, never affects the comment itself.
type CommentIndexWorker interface {
	Start(ctx context.Context)

	// Enqueue schedules a counter refresh for the given article.
	Enqueue(articleID int64)
}
