package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gamewire/gamewire/domain"
	"github.com/gamewire/gamewire/internal/rest/request"
	"github.com/gamewire/gamewire/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// CreateComment adds a comment to the article from the URL parameter.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrArticleNotFound.Error()})
		return
	}
	aid := int64(idP)

	comment := req.ToDomain(aid, uid)

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// FetchCommentsByArticle lists an article's visible comments in creation order.
func (h *CommentHandler) FetchCommentsByArticle(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrArticleNotFound.Error()})
		return
	}
	aid := int64(idP)

	ctx := c.Request.Context()
	comments, err := h.Service.FetchByArticle(ctx, aid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, 0, len(comments))
	for _, comment := range comments {
		res = append(res, response.NewCommentFromDomain(comment))
	}
	c.JSON(http.StatusOK, gin.H{"comments": res})
}

// DeleteComment soft-deletes the requester's own comment.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrCommentNotFound.Error()})
		return
	}
	cid := int64(idP)

	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, cid, uid); err != nil {
		if err == domain.ErrForbidden {
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot delete someone else's comment"})
			return
		}
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ReportComment files an abuse report against a comment.
func (h *CommentHandler) ReportComment(c *gin.Context) {
	var req request.Report
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrCommentNotFound.Error()})
		return
	}
	cid := int64(idP)

	uid, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in to report a comment"})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Report(ctx, cid, uid, req.Reason); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment reported successfully"})
}
