package model

import (
	"time"

	"github.com/gamewire/gamewire/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index:idx_comment_article"`
	AuthorID  int64     `gorm:"column:author_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	Status    int8      `gorm:"column:status;not null;default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`

	Reports []CommentReport `gorm:"foreignKey:CommentID"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		Status:    int8(c.Status),
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	reports := make([]domain.Report, 0, len(m.Reports))
	for i := range m.Reports {
		reports = append(reports, m.Reports[i].ToDomain())
	}
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		Status:    domain.CommentStatus(m.Status),
		Reports:   reports,
		CreatedAt: m.CreatedAt,
	}
}
