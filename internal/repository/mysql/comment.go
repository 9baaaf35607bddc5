package mysql

import (
	"context"
	"errors"

	driver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/gamewire/gamewire/domain"
	"github.com/gamewire/gamewire/internal/repository/mysql/model"
)

// mysqlDuplicateEntry is the server error number for unique key violations.
const mysqlDuplicateEntry = 1062

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).
		Preload("Reports").
		First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) FetchByArticle(ctx context.Context, articleID int64, excludeDeleted bool) ([]*domain.Comment, error) {
	query := c.DB.WithContext(ctx).
		Where("article_id = ?", articleID)
	if excludeDeleted {
		query = query.Where("status = ?", int8(domain.CommentStatusActive))
	}

	var comments []model.Comment
	err := query.
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		domainComment := comments[i].ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) MarkDeleted(ctx context.Context, id int64) error {
	// No rows-affected check: updating an already deleted row touches
	// nothing and that is fine, the state is terminal either way.
	return c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("status", int8(domain.CommentStatusDeleted)).Error
}

func (c *commentRepository) AddReport(ctx context.Context, commentID int64, r domain.Report) error {
	reportModel := model.NewCommentReportFromDomain(commentID, r)
	err := c.DB.WithContext(ctx).Create(reportModel).Error
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrDuplicateReport
		}
		return err
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *driver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
