package response

import (
	"github.com/gamewire/gamewire/domain"
)

type Article struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	UserName     string `json:"user_name"`
	CommentCount int64  `json:"comment_count"`
	UpdatedAt    string `json:"updated_at"`
	CreatedAt    string `json:"created_at"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		UserName:     a.User.Name,
		CommentCount: a.CommentCount,
		UpdatedAt:    a.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:    a.CreatedAt.Format(DateTimeFormat),
	}
}
