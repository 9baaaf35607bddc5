package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamewire/gamewire/domain"
	"github.com/gamewire/gamewire/domain/mocks"
	"github.com/gamewire/gamewire/internal/repository"
)

func TestGetByIDCacheHit(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	userRepo := new(mocks.UserRepository)

	cache.On("GetArticle", mock.Anything, int64(10)).
		Return(domain.Article{ID: 10, Title: "cached"}, nil).Once()

	repo := repository.NewCachedArticleRepository(db, cache, userRepo)
	res, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "cached", res.Title)
	db.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetByIDCacheMissRebuilds(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	userRepo := new(mocks.UserRepository)

	cache.On("GetArticle", mock.Anything, int64(10)).
		Return(domain.Article{}, domain.ErrCacheMiss).Once()
	db.On("GetByID", mock.Anything, int64(10)).
		Return(domain.Article{ID: 10, Title: "from db", User: domain.User{ID: 5}}, nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(5)).
		Return(domain.User{ID: 5, Name: "Alice"}, nil).Once()
	// cache refill happens asynchronously, it may or may not land in time
	cache.On("SetArticle", mock.Anything, mock.Anything).Return(nil).Maybe()

	repo := repository.NewCachedArticleRepository(db, cache, userRepo)
	res, err := repo.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "from db", res.Title)
	assert.Equal(t, "Alice", res.User.Name)
}

func TestGetByIDMissingEverywhere(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	userRepo := new(mocks.UserRepository)

	cache.On("GetArticle", mock.Anything, int64(99)).
		Return(domain.Article{}, domain.ErrCacheMiss).Once()
	db.On("GetByID", mock.Anything, int64(99)).
		Return(domain.Article{}, domain.ErrNotFound).Once()

	repo := repository.NewCachedArticleRepository(db, cache, userRepo)
	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchFillsUserDetails(t *testing.T) {
	db := new(mocks.ArticleRepository)
	cache := new(mocks.ArticleCache)
	userRepo := new(mocks.UserRepository)

	db.On("Fetch", mock.Anything, "", int64(10)).
		Return([]domain.Article{
			{ID: 1, User: domain.User{ID: 5}},
			{ID: 2, User: domain.User{ID: 5}},
		}, nil).Once()
	userRepo.On("GetByIDs", mock.Anything, []int64{5}).
		Return([]domain.User{{ID: 5, Name: "Alice"}}, nil).Once()

	repo := repository.NewCachedArticleRepository(db, cache, userRepo)
	res, err := repo.Fetch(context.Background(), "", 10)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Alice", res[0].User.Name)
	assert.Equal(t, "Alice", res[1].User.Name)
}
