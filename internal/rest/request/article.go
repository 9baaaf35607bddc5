package request

import "github.com/gamewire/gamewire/domain"

type Article struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Title:   r.Title,
		Content: r.Content,
	}
}
