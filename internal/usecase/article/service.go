package article

import (
	"context"
	"time"

	"github.com/gamewire/gamewire/domain"
	"github.com/gamewire/gamewire/internal/repository"
)

const bloomSeedBatch = 1000

type Service struct {
	articleRepo domain.ArticleRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, b domain.BloomRepository) *Service {
	return &Service{
		articleRepo: a,
		bloomRepo:   b,
	}
}

func (a *Service) Fetch(ctx context.Context, cursor string, num int64) ([]domain.Article, string, error) {
	res, err := a.articleRepo.Fetch(ctx, cursor, num)
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

func (a *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	return a.articleRepo.GetByID(ctx, id)
}

func (a *Service) Store(ctx context.Context, m *domain.Article) error {
	existedArticle, _ := a.articleRepo.GetByTitle(ctx, m.Title) // ignore if any error
	if existedArticle != (domain.Article{}) {
		return domain.ErrConflict
	}

	if err := a.articleRepo.Store(ctx, m); err != nil {
		return err
	}

	// a new article must be visible to the existence filter right away
	return a.bloomRepo.Add(ctx, m.ID)
}

func (a *Service) Update(ctx context.Context, ar *domain.Article) error {
	ar.UpdatedAt = time.Now()
	return a.articleRepo.Update(ctx, ar)
}

func (a *Service) Delete(ctx context.Context, id int64) error {
	// Bloom filters cannot unlearn an ID; the authoritative lookup in the
	// comment service catches deleted articles regardless.
	return a.articleRepo.Delete(ctx, id)
}

// InitBloomFilter seeds the filter with every existing article ID,
// paging through the table at startup.
func (a *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := a.articleRepo.FetchIDs(ctx, cursor, bloomSeedBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := a.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
