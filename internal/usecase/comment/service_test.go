package comment_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamewire/gamewire/domain"
	"github.com/gamewire/gamewire/domain/mocks"
	ucase "github.com/gamewire/gamewire/internal/usecase/comment"
)

type serviceMocks struct {
	commentRepo *mocks.CommentRepository
	articleRepo *mocks.ArticleRepository
	userRepo    *mocks.UserRepository
	bloomRepo   *mocks.BloomRepository
	indexWorker *mocks.CommentIndexWorker
}

func newService() (*ucase.Service, *serviceMocks) {
	m := &serviceMocks{
		commentRepo: new(mocks.CommentRepository),
		articleRepo: new(mocks.ArticleRepository),
		userRepo:    new(mocks.UserRepository),
		bloomRepo:   new(mocks.BloomRepository),
		indexWorker: new(mocks.CommentIndexWorker),
	}
	svc := ucase.NewService(m.commentRepo, m.articleRepo, m.userRepo, m.bloomRepo, m.indexWorker)
	return svc, m
}

func (m *serviceMocks) expectArticleExists(articleID int64) {
	m.bloomRepo.On("Exists", mock.Anything, articleID).Return(true, nil)
	m.articleRepo.On("GetByID", mock.Anything, articleID).
		Return(domain.Article{ID: articleID, Title: faker.Sentence()}, nil)
}

func TestCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := newService()
		m.expectArticleExists(10)
		m.commentRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Run(func(args mock.Arguments) {
				c := args.Get(1).(*domain.Comment)
				c.ID = 1
				c.CreatedAt = time.Now()
			}).
			Return(nil).Once()
		m.indexWorker.On("Enqueue", int64(10)).Once()

		c := domain.Comment{ArticleID: 10, AuthorID: 5, Content: "nice game"}
		err := svc.Create(context.Background(), &c)

		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, domain.CommentStatusActive, c.Status)
		assert.False(t, c.CreatedAt.IsZero())
		m.commentRepo.AssertExpectations(t)
		m.indexWorker.AssertExpectations(t)
	})

	t.Run("article definitely absent in bloom filter", func(t *testing.T) {
		svc, m := newService()
		m.bloomRepo.On("Exists", mock.Anything, int64(99)).Return(false, nil)

		c := domain.Comment{ArticleID: 99, AuthorID: 5, Content: "text"}
		err := svc.Create(context.Background(), &c)

		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
		m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
		m.articleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("bloom false positive caught by repository", func(t *testing.T) {
		svc, m := newService()
		m.bloomRepo.On("Exists", mock.Anything, int64(99)).Return(true, nil)
		m.articleRepo.On("GetByID", mock.Anything, int64(99)).
			Return(domain.Article{}, domain.ErrNotFound)

		c := domain.Comment{ArticleID: 99, AuthorID: 5, Content: "text"}
		err := svc.Create(context.Background(), &c)

		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
		m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("bloom filter failure degrades to repository lookup", func(t *testing.T) {
		svc, m := newService()
		m.bloomRepo.On("Exists", mock.Anything, int64(10)).Return(false, assert.AnError)
		m.articleRepo.On("GetByID", mock.Anything, int64(10)).
			Return(domain.Article{ID: 10}, nil)
		m.commentRepo.On("Store", mock.Anything, mock.Anything).Return(nil).Once()
		m.indexWorker.On("Enqueue", int64(10)).Once()

		c := domain.Comment{ArticleID: 10, AuthorID: 5, Content: "text"}
		err := svc.Create(context.Background(), &c)

		require.NoError(t, err)
	})

	t.Run("empty content", func(t *testing.T) {
		svc, m := newService()

		c := domain.Comment{ArticleID: 10, AuthorID: 5, Content: "   \t "}
		err := svc.Create(context.Background(), &c)

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc, m := newService()

		c := domain.Comment{ArticleID: 10, Content: "text"}
		err := svc.Create(context.Background(), &c)

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		m.commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("store failure is surfaced and index untouched", func(t *testing.T) {
		svc, m := newService()
		m.expectArticleExists(10)
		m.commentRepo.On("Store", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		c := domain.Comment{ArticleID: 10, AuthorID: 5, Content: "text"}
		err := svc.Create(context.Background(), &c)

		assert.Error(t, err)
		m.indexWorker.AssertNotCalled(t, "Enqueue", mock.Anything)
	})
}

func TestFetchByArticle(t *testing.T) {
	t.Run("returns comments in creation order with authors attached", func(t *testing.T) {
		svc, m := newService()
		m.expectArticleExists(10)

		now := time.Now()
		stored := []*domain.Comment{
			{ID: 1, ArticleID: 10, AuthorID: 5, Content: "first", CreatedAt: now.Add(-time.Hour)},
			{ID: 2, ArticleID: 10, AuthorID: 7, Content: "second", CreatedAt: now},
		}
		m.commentRepo.On("FetchByArticle", mock.Anything, int64(10), true).
			Return(stored, nil).Once()
		m.userRepo.On("GetByIDs", mock.Anything, []int64{5, 7}).
			Return([]domain.User{
				{ID: 5, Name: "Alice"},
				{ID: 7, Name: "Bob"},
			}, nil).Once()

		res, err := svc.FetchByArticle(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, int64(1), res[0].ID)
		assert.Equal(t, int64(2), res[1].ID)
		assert.True(t, !res[1].CreatedAt.Before(res[0].CreatedAt))
		require.NotNil(t, res[0].Author)
		assert.Equal(t, "Alice", res[0].Author.Name)
		require.NotNil(t, res[1].Author)
		assert.Equal(t, "Bob", res[1].Author.Name)
	})

	t.Run("deleted comments are excluded at the repository", func(t *testing.T) {
		svc, m := newService()
		m.expectArticleExists(10)
		m.commentRepo.On("FetchByArticle", mock.Anything, int64(10), true).
			Return([]*domain.Comment{}, nil).Once()

		res, err := svc.FetchByArticle(context.Background(), 10)

		require.NoError(t, err)
		assert.Empty(t, res)
		// the visibility filter must always be requested
		m.commentRepo.AssertCalled(t, "FetchByArticle", mock.Anything, int64(10), true)
	})

	t.Run("article not found", func(t *testing.T) {
		svc, m := newService()
		m.bloomRepo.On("Exists", mock.Anything, int64(99)).Return(false, nil)

		_, err := svc.FetchByArticle(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
		m.commentRepo.AssertNotCalled(t, "FetchByArticle", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("author can delete", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Comment{ID: 1, AuthorID: 5}, nil).Once()
		m.commentRepo.On("MarkDeleted", mock.Anything, int64(1)).Return(nil).Once()

		err := svc.Delete(context.Background(), 1, 5)

		require.NoError(t, err)
		m.commentRepo.AssertExpectations(t)
	})

	t.Run("non-author is forbidden", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Comment{ID: 1, AuthorID: 5}, nil).Once()

		err := svc.Delete(context.Background(), 1, 9)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		m.commentRepo.AssertNotCalled(t, "MarkDeleted", mock.Anything, mock.Anything)
	})

	t.Run("comment not found", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(404)).
			Return(nil, domain.ErrCommentNotFound).Once()

		err := svc.Delete(context.Background(), 404, 5)

		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})

	t.Run("re-delete by author is a no-op success", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Comment{ID: 1, AuthorID: 5, Status: domain.CommentStatusDeleted}, nil).Once()
		m.commentRepo.On("MarkDeleted", mock.Anything, int64(1)).Return(nil).Once()

		err := svc.Delete(context.Background(), 1, 5)

		require.NoError(t, err)
	})
}

func TestReport(t *testing.T) {
	t.Run("first report succeeds", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Comment{ID: 1, AuthorID: 5}, nil).Once()
		m.commentRepo.On("AddReport", mock.Anything, int64(1), mock.MatchedBy(func(r domain.Report) bool {
			return r.ReporterID == 9 && r.Reason == "spam"
		})).Return(nil).Once()

		err := svc.Report(context.Background(), 1, 9, "spam")

		require.NoError(t, err)
		m.commentRepo.AssertExpectations(t)
	})

	t.Run("second report from the same user is rejected", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Comment{ID: 1, Reports: []domain.Report{{ReporterID: 9, Reason: "spam"}}}, nil).Once()
		m.commentRepo.On("AddReport", mock.Anything, int64(1), mock.Anything).
			Return(domain.ErrDuplicateReport).Once()

		err := svc.Report(context.Background(), 1, 9, "abuse")

		assert.ErrorIs(t, err, domain.ErrDuplicateReport)
	})

	t.Run("author may report own comment", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Comment{ID: 1, AuthorID: 9}, nil).Once()
		m.commentRepo.On("AddReport", mock.Anything, int64(1), mock.Anything).Return(nil).Once()

		err := svc.Report(context.Background(), 1, 9, "posted by mistake")

		require.NoError(t, err)
	})

	t.Run("comment not found", func(t *testing.T) {
		svc, m := newService()
		m.commentRepo.On("GetByID", mock.Anything, int64(404)).
			Return(nil, domain.ErrCommentNotFound).Once()

		err := svc.Report(context.Background(), 404, 9, "spam")

		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
		m.commentRepo.AssertNotCalled(t, "AddReport", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc, m := newService()

		err := svc.Report(context.Background(), 1, 0, "spam")

		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		m.commentRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

// TestCommentLifecycle walks the whole flow: create, list, forbidden delete,
// owner delete, list again.
func TestCommentLifecycle(t *testing.T) {
	svc, m := newService()
	m.bloomRepo.On("Exists", mock.Anything, int64(10)).Return(true, nil)
	m.articleRepo.On("GetByID", mock.Anything, int64(10)).Return(domain.Article{ID: 10}, nil)
	m.indexWorker.On("Enqueue", int64(10))

	c := domain.Comment{ArticleID: 10, AuthorID: 1, Content: "nice game"}
	m.commentRepo.On("Store", mock.Anything, &c).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Comment).ID = 100
		}).
		Return(nil).Once()
	require.NoError(t, svc.Create(context.Background(), &c))
	assert.False(t, c.Deleted())

	m.commentRepo.On("FetchByArticle", mock.Anything, int64(10), true).
		Return([]*domain.Comment{&c}, nil).Once()
	m.userRepo.On("GetByIDs", mock.Anything, []int64{1}).
		Return([]domain.User{{ID: 1, Name: "u1"}}, nil).Once()
	listed, err := svc.FetchByArticle(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, int64(100), listed[0].ID)

	m.commentRepo.On("GetByID", mock.Anything, int64(100)).Return(&c, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), 100, 2), domain.ErrForbidden)

	m.commentRepo.On("MarkDeleted", mock.Anything, int64(100)).
		Run(func(mock.Arguments) { c.MarkDeleted() }).
		Return(nil).Once()
	require.NoError(t, svc.Delete(context.Background(), 100, 1))
	assert.True(t, c.Deleted())

	m.commentRepo.On("FetchByArticle", mock.Anything, int64(10), true).
		Return([]*domain.Comment{}, nil).Once()
	listed, err = svc.FetchByArticle(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
