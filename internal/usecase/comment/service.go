package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gamewire/gamewire/domain"
)

// Service is the authorized, validated operation surface for comments.
type Service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
	indexWorker domain.CommentIndexWorker
}

var _ domain.CommentUsecase = (*Service)(nil)

// NewService will create a new comment service object
func NewService(
	commentRepo domain.CommentRepository,
	articleRepo domain.ArticleRepository,
	userRepo domain.UserRepository,
	bloomRepo domain.BloomRepository,
	indexWorker domain.CommentIndexWorker,
) *Service {
	return &Service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
		indexWorker: indexWorker,
	}
}

// articleMustExist resolves the referential precondition shared by Create
// and FetchByArticle. The bloom filter gives a cheap definitive miss; a
// positive answer still needs the authoritative repository lookup.
func (s *Service) articleMustExist(ctx context.Context, articleID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err != nil {
		logrus.Warnf("bloom filter check failed for article %d: %v", articleID, err)
	} else if !exists {
		return domain.ErrArticleNotFound
	}

	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrArticleNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	if c.AuthorID == 0 {
		return domain.ErrUnauthenticated
	}
	c.Content = strings.TrimSpace(c.Content)
	if err := c.ValidateContent(); err != nil {
		return err
	}
	if err := s.articleMustExist(ctx, c.ArticleID); err != nil {
		return err
	}

	c.Status = domain.CommentStatusActive
	c.Reports = nil
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	// Best effort: the denormalized counter refresh is never allowed to
	// fail the creation, the comment table is the source of truth.
	s.indexWorker.Enqueue(c.ArticleID)

	return nil
}

func (s *Service) FetchByArticle(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	if err := s.articleMustExist(ctx, articleID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, articleID, true)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []*domain.Comment{}, nil
	}

	return s.fillAuthorDetails(ctx, comments)
}

func (s *Service) Delete(ctx context.Context, commentID int64, userID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !comment.CanDelete(userID) {
		return domain.ErrForbidden
	}

	return s.commentRepo.MarkDeleted(ctx, commentID)
}

func (s *Service) Report(ctx context.Context, commentID int64, userID int64, reason string) error {
	if userID == 0 {
		return domain.ErrUnauthenticated
	}

	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return err
	}

	// Single conditional write, keyed on the reporter: a concurrent
	// duplicate loses at the storage layer instead of slipping past a
	// read-then-write check.
	return s.commentRepo.AddReport(ctx, commentID, domain.Report{
		ReporterID: userID,
		Reason:     reason,
		CreatedAt:  time.Now(),
	})
}

// fillAuthorDetails batch loads author display names for presentation.
func (s *Service) fillAuthorDetails(ctx context.Context, comments []*domain.Comment) ([]*domain.Comment, error) {
	authorIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.AuthorID] {
			authorIDs = append(authorIDs, c.AuthorID)
			seen[c.AuthorID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for _, c := range comments {
		if u, ok := userMap[c.AuthorID]; ok {
			author := u
			c.Author = &author
		}
	}

	return comments, nil
}
