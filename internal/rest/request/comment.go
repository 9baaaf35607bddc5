package request

import "github.com/gamewire/gamewire/domain"

type Comment struct {
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(articleID, authorID int64) domain.Comment {
	return domain.Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Content:   r.Content,
	}
}

type Report struct {
	Reason string `json:"reason" binding:"required,max=200"`
}
