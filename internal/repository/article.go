package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/gamewire/gamewire/domain"
)

// cachedArticleRepository coordinates the mysql repository and the redis
// cache. Reads go through the cache, misses are rebuilt under singleflight
// so a hot article never stampedes the database.
type cachedArticleRepository struct {
	db           domain.ArticleRepository
	cache        domain.ArticleCache
	userRepo     domain.UserRepository
	rebuildGroup singleflight.Group
}

var _ domain.ArticleRepository = (*cachedArticleRepository)(nil)

// NewCachedArticleRepository wraps db with the read-through article cache.
func NewCachedArticleRepository(db domain.ArticleRepository, cache domain.ArticleCache, userRepo domain.UserRepository) *cachedArticleRepository {
	return &cachedArticleRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
	}
}

func (r *cachedArticleRepository) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Article, error) {
	articles, err := r.db.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, err
	}

	return r.fillUserDetails(ctx, articles)
}

func (r *cachedArticleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	article, err := r.cache.GetArticle(ctx, id)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("article cache get error: %v", err)
	}

	result, err, _ := r.rebuildGroup.Do("article:"+strconv.FormatInt(id, 10), func() (interface{}, error) {
		art, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		user, err := r.userRepo.GetByID(ctx, art.User.ID)
		if err != nil {
			return nil, err
		}
		art.User = user

		go func(art domain.Article) {
			if err := r.cache.SetArticle(context.Background(), &art); err != nil {
				logrus.Warnf("failed to set article cache: %v", err)
			}
		}(art)

		return art, nil
	})
	if err != nil {
		return domain.Article{}, err
	}

	return result.(domain.Article), nil
}

func (r *cachedArticleRepository) GetByTitle(ctx context.Context, title string) (domain.Article, error) {
	// title lookups are rare, skip the cache
	article, err := r.db.GetByTitle(ctx, title)
	if err != nil {
		return domain.Article{}, err
	}

	user, err := r.userRepo.GetByID(ctx, article.User.ID)
	if err != nil {
		return domain.Article{}, err
	}
	article.User = user

	return article, nil
}

func (r *cachedArticleRepository) Store(ctx context.Context, a *domain.Article) error {
	return r.db.Store(ctx, a)
}

func (r *cachedArticleRepository) Update(ctx context.Context, ar *domain.Article) error {
	if err := r.db.Update(ctx, ar); err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeleteArticle(context.Background(), id)
	}(ar.ID)

	return nil
}

func (r *cachedArticleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}

	go func(id int64) {
		_ = r.cache.DeleteArticle(context.Background(), id)
	}(id)

	return nil
}

func (r *cachedArticleRepository) RefreshCommentCounts(ctx context.Context, articleIDs []int64) error {
	if err := r.db.RefreshCommentCounts(ctx, articleIDs); err != nil {
		return err
	}

	// drop stale cached copies so the next read picks up fresh counters
	go func(ids []int64) {
		for _, id := range ids {
			_ = r.cache.DeleteArticle(context.Background(), id)
		}
	}(articleIDs)

	return nil
}

func (r *cachedArticleRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

// fillUserDetails batch loads author info for a page of articles.
func (r *cachedArticleRepository) fillUserDetails(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return articles, nil
	}

	userIDs := make([]int64, 0, len(articles))
	existMap := make(map[int64]bool)
	for _, item := range articles {
		if !existMap[item.User.ID] {
			userIDs = append(userIDs, item.User.ID)
			existMap[item.User.ID] = true
		}
	}

	users, err := r.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range articles {
		if u, ok := userMap[articles[i].User.ID]; ok {
			articles[i].User = u
		}
	}

	return articles, nil
}
