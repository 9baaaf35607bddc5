package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gamewire/gamewire/domain"
)

const (
	flushInterval = 1 * time.Second
	batchSize     = 100
)

// syncCommentCountsWorker keeps the denormalized article comment counters
// roughly in step with the comment table. Tasks are deduplicated per
// article and flushed in batches; a full channel drops the task, the
// counter is advisory and the next enqueue for that article heals it.
type syncCommentCountsWorker struct {
	articleRepo domain.ArticleRepository
	ch          chan int64
}

var _ domain.CommentIndexWorker = (*syncCommentCountsWorker)(nil)

func NewSyncCommentCountsWorker(ar domain.ArticleRepository) *syncCommentCountsWorker {
	return &syncCommentCountsWorker{
		articleRepo: ar,
		ch:          make(chan int64, 1024),
	}
}

func (s *syncCommentCountsWorker) Enqueue(articleID int64) {
	select {
	case s.ch <- articleID:
	default:
		logrus.Info("SyncCommentCountsWorker's channel is full, task dropped")
	}
}

func (s *syncCommentCountsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]int64, 0, batchSize)
	for {
		select {
		case articleID := <-s.ch:
			batch = append(batch, articleID)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]int64, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]int64, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down SyncCommentCountsWorker, flushing remaining tasks...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *syncCommentCountsWorker) flush(ctx context.Context, batch []int64) {
	if len(batch) == 0 {
		return
	}

	seen := make(map[int64]struct{}, len(batch))
	ids := make([]int64, 0, len(batch))
	for _, aid := range batch {
		if _, ok := seen[aid]; ok {
			continue
		}
		seen[aid] = struct{}{}
		ids = append(ids, aid)
	}

	if err := s.articleRepo.RefreshCommentCounts(ctx, ids); err != nil {
		logrus.Errorf("failed to refresh comment counts for %d articles: %v", len(ids), err)
	}
}
