package domain

import "context"

// BloomRepository is an approximate membership filter over article IDs.
// A negative answer is definitive, a positive one still needs confirmation
// against the cache or the database.
type BloomRepository interface {
	// Add registers an article ID with the filter.
	Add(ctx context.Context, id int64) error

	// Exists checks whether the ID may exist.
	// false means the article definitely does not exist.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd registers many IDs at once, used when seeding at startup.
	BulkAdd(ctx context.Context, ids []int64) error
}
