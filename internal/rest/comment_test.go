package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gamewire/gamewire/domain"
	"github.com/gamewire/gamewire/domain/mocks"
	"github.com/gamewire/gamewire/internal/rest"
	"github.com/gamewire/gamewire/internal/rest/middleware"
)

func setupRouter(svc domain.CommentUsecase, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUserKey, userID)
		})
	}

	h := rest.NewCommentHandler(svc)
	r.GET("/articles/:id/comments", h.FetchCommentsByArticle)
	r.POST("/articles/:id/comments", h.CreateComment)
	r.DELETE("/comments/:id", h.DeleteComment)
	r.POST("/comments/:id/report", h.ReportComment)
	return r
}

func TestCreateCommentHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
			return c.ArticleID == 10 && c.AuthorID == 5 && c.Content == "nice game"
		})).Return(nil).Once()

		r := setupRouter(svc, 5)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/articles/10/comments",
			strings.NewReader(`{"content":"nice game"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("article not found", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(domain.ErrArticleNotFound).Once()

		r := setupRouter(svc, 5)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/articles/99/comments",
			strings.NewReader(`{"content":"text"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing body field", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)

		r := setupRouter(svc, 5)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/articles/10/comments",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("no identity", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)

		r := setupRouter(svc, 0)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/articles/10/comments",
			strings.NewReader(`{"content":"text"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFetchCommentsHandler(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	svc.On("FetchByArticle", mock.Anything, int64(10)).
		Return([]*domain.Comment{
			{ID: 1, ArticleID: 10, AuthorID: 5, Content: "first", Author: &domain.User{ID: 5, Name: "Alice"}},
		}, nil).Once()

	r := setupRouter(svc, 0)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/articles/10/comments", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Comments []struct {
			ID      int64  `json:"id"`
			Content string `json:"content"`
			Author  *struct {
				Name string `json:"name"`
			} `json:"author"`
		} `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Comments, 1)
	assert.Equal(t, "first", body.Comments[0].Content)
	require.NotNil(t, body.Comments[0].Author)
	assert.Equal(t, "Alice", body.Comments[0].Author.Name)
}

func TestDeleteCommentHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)
		svc.On("Delete", mock.Anything, int64(7), int64(5)).Return(nil).Once()

		r := setupRouter(svc, 5)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/comments/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("forbidden for non-author", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)
		svc.On("Delete", mock.Anything, int64(7), int64(9)).
			Return(domain.ErrForbidden).Once()

		r := setupRouter(svc, 9)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/comments/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("comment not found", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)
		svc.On("Delete", mock.Anything, int64(404), int64(5)).
			Return(domain.ErrCommentNotFound).Once()

		r := setupRouter(svc, 5)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/comments/404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReportCommentHandler(t *testing.T) {
	t.Run("reported", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)
		svc.On("Report", mock.Anything, int64(7), int64(9), "spam").Return(nil).Once()

		r := setupRouter(svc, 9)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/comments/7/report",
			strings.NewReader(`{"reason":"spam"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate report", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)
		svc.On("Report", mock.Anything, int64(7), int64(9), "abuse").
			Return(domain.ErrDuplicateReport).Once()

		r := setupRouter(svc, 9)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/comments/7/report",
			strings.NewReader(`{"reason":"abuse"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no identity", func(t *testing.T) {
		svc := new(mocks.CommentUsecase)

		r := setupRouter(svc, 0)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/comments/7/report",
			strings.NewReader(`{"reason":"spam"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "Report", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
