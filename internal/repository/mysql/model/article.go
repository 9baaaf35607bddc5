package model

import (
	"time"

	"github.com/gamewire/gamewire/domain"
)

type Article struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(100);not null"`
	Content      string    `gorm:"type:longtext;not null"`
	UserID       int64     `gorm:"column:user_id;not null"`
	CommentCount int64     `gorm:"column:comment_count;default:0"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
	CreatedAt    time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
		CommentCount: m.CommentCount,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		UserID:       a.User.ID,
		CommentCount: a.CommentCount,
		UpdatedAt:    a.UpdatedAt,
		CreatedAt:    a.CreatedAt,
	}
}
