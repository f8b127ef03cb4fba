package handlers

import (
	"net/http"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// BlogArticleInput is the admin article form. The slug is derived from the
// title when left empty.
type BlogArticleInput struct {
	Title         string `json:"title" binding:"required,max=255"`
	Slug          string `json:"slug"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content" binding:"required"`
	FeaturedImage string `json:"featuredImage"`
	Author        string `json:"author"`
	IsPublished   bool   `json:"isPublished"`
}

// articleView adds the card fields the public blog pages show.
type articleView struct {
	models.BlogArticle
	Summary    string `json:"summary"`
	AuthorName string `json:"authorName"`
}

func newArticleView(a models.BlogArticle) articleView {
	return articleView{BlogArticle: a, Summary: a.Summary(), AuthorName: a.DisplayAuthor()}
}

//
// --- Public Blog Handlers ---
//

// GetPublishedArticles handles GET /v1/blog
func (h *Handlers) GetPublishedArticles(c *gin.Context) {
	articles, err := h.Store.Blog.List(c.Request.Context(), true)
	if err != nil {
		h.fail(c, err, "Articles")
		return
	}

	views := make([]articleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, newArticleView(a))
	}
	c.JSON(http.StatusOK, gin.H{"articles": views})
}

// GetArticleBySlug handles GET /v1/blog/:slug
func (h *Handlers) GetArticleBySlug(c *gin.Context) {
	article, err := h.Store.Blog.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err, "Article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": newArticleView(*article)})
}

//
// --- Admin Blog Handlers ---
//

// AdminListArticles handles GET /v1/admin/blog
func (h *Handlers) AdminListArticles(c *gin.Context) {
	articles, err := h.Store.Blog.List(c.Request.Context(), false)
	if err != nil {
		h.fail(c, err, "Articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// AdminGetArticle handles GET /v1/admin/blog/:id
func (h *Handlers) AdminGetArticle(c *gin.Context) {
	article, err := h.Store.Blog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// CreateArticle handles POST /v1/admin/blog
func (h *Handlers) CreateArticle(c *gin.Context) {
	var input BlogArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article := &models.BlogArticle{}
	if !applyArticleInput(c, article, &input, time.Now()) {
		return
	}
	if err := h.Store.Blog.Create(c.Request.Context(), article); err != nil {
		h.fail(c, err, "Article")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Article created", "article": article})
}

// UpdateArticle handles PUT /v1/admin/blog/:id
func (h *Handlers) UpdateArticle(c *gin.Context) {
	var input BlogArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	article, err := h.Store.Blog.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Article")
		return
	}
	if !applyArticleInput(c, article, &input, time.Now()) {
		return
	}
	if err := h.Store.Blog.Update(ctx, article); err != nil {
		h.fail(c, err, "Article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article updated", "article": article})
}

// ToggleArticlePublished handles PATCH /v1/admin/blog/:id/publish
// Publishing stamps published_at with the current time; unpublishing clears it.
func (h *Handlers) ToggleArticlePublished(c *gin.Context) {
	ctx := c.Request.Context()
	article, err := h.Store.Blog.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err, "Article")
		return
	}

	now := time.Now()
	published := !article.IsPublished
	if err := h.Store.Blog.SetPublished(ctx, article.ID, published, now); err != nil {
		h.fail(c, err, "Article")
		return
	}

	article.IsPublished = published
	article.PublishedAt = nil
	if published {
		article.PublishedAt = &now
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article status updated", "article": article})
}

// DeleteArticle handles DELETE /v1/admin/blog/:id
func (h *Handlers) DeleteArticle(c *gin.Context) {
	if err := h.Store.Blog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

// applyArticleInput copies the form onto a, keeping published_at consistent
// with is_published. It writes a 400 and returns false for an unusable slug.
func applyArticleInput(c *gin.Context, a *models.BlogArticle, input *BlogArticleInput, now time.Time) bool {
	source := input.Slug
	if source == "" {
		source = input.Title
	}
	articleSlug := slug.Make(source)
	if articleSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must contain letters or digits"})
		return false
	}

	a.Title = input.Title
	a.Slug = articleSlug
	a.Excerpt = input.Excerpt
	a.Content = input.Content
	a.FeaturedImage = input.FeaturedImage
	a.Author = input.Author

	switch {
	case input.IsPublished && !a.IsPublished:
		a.PublishedAt = &now
	case !input.IsPublished:
		a.PublishedAt = nil
	}
	a.IsPublished = input.IsPublished
	return true
}
