package domain

import "errors"

var (
	// ErrInternalServerError is returned when an unexpected condition is met
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound is returned when the requested item does not exist
	ErrNotFound = errors.New("your requested item is not found")
	// ErrArticleNotFound is returned when a referenced article does not exist
	ErrArticleNotFound = errors.New("article is not found")
	// ErrCommentNotFound is returned when a referenced comment does not exist
	ErrCommentNotFound = errors.New("comment is not found")
	// ErrConflict is returned when the item already exists
	ErrConflict = errors.New("your item already exist")
	// ErrDuplicateReport is returned when a user reports the same comment twice
	ErrDuplicateReport = errors.New("you have already reported this comment")
	// ErrForbidden is returned when the requester lacks authority over the item
	ErrForbidden = errors.New("you do not have permission for this item")
	// ErrUnauthenticated is returned when no user identity accompanies the request
	ErrUnauthenticated = errors.New("you must be logged in")
	// ErrBadParamInput is returned when the given request parameter is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCacheMiss is returned by caches when the key is absent
	ErrCacheMiss = errors.New("cache miss")
)
