package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BlogRepo struct {
	DB *sqlx.DB
}

func (r *BlogRepo) List(ctx context.Context, publishedOnly bool) ([]models.BlogArticle, error) {
	query := "SELECT * FROM blog_articles"
	if publishedOnly {
		query += " WHERE is_published = TRUE"
	}
	query += " ORDER BY created_at DESC"

	articles := []models.BlogArticle{}
	if err := r.DB.SelectContext(ctx, &articles, query); err != nil {
		return nil, wrap("list blog articles", err)
	}
	return articles, nil
}

func (r *BlogRepo) Get(ctx context.Context, id string) (*models.BlogArticle, error) {
	var a models.BlogArticle
	if err := r.DB.GetContext(ctx, &a, "SELECT * FROM blog_articles WHERE id = ?", id); err != nil {
		return nil, wrap("get blog article", err)
	}
	return &a, nil
}

func (r *BlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogArticle, error) {
	var a models.BlogArticle
	err := r.DB.GetContext(ctx, &a,
		"SELECT * FROM blog_articles WHERE slug = ? AND is_published = TRUE", slug)
	if err != nil {
		return nil, wrap("get blog article by slug", err)
	}
	return &a, nil
}

func (r *BlogRepo) Create(ctx context.Context, a *models.BlogArticle) error {
	now := time.Now()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO blog_articles
		(id, title, slug, excerpt, content, featured_image, author, is_published, published_at, created_at, updated_at)
		VALUES (:id, :title, :slug, :excerpt, :content, :featured_image, :author, :is_published, :published_at, :created_at, :updated_at)`
	_, err := r.DB.NamedExecContext(ctx, query, a)
	return wrap("create blog article", err)
}

func (r *BlogRepo) Update(ctx context.Context, a *models.BlogArticle) error {
	a.UpdatedAt = time.Now()
	query := `
		UPDATE blog_articles
		SET title = :title, slug = :slug, excerpt = :excerpt, content = :content,
			featured_image = :featured_image, author = :author, is_published = :is_published,
			published_at = :published_at, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.DB.NamedExecContext(ctx, query, a)
	return expectRow("update blog article", res, err)
}

// SetPublished stamps published_at when publishing and clears it otherwise.
func (r *BlogRepo) SetPublished(ctx context.Context, id string, published bool, at time.Time) error {
	var publishedAt *time.Time
	if published {
		publishedAt = &at
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE blog_articles SET is_published = ?, published_at = ?, updated_at = ? WHERE id = ?",
		published, publishedAt, time.Now(), id)
	return expectRow("set blog article published", res, err)
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM blog_articles WHERE id = ?", id)
	return expectRow("delete blog article", res, err)
}

func (r *BlogRepo) CountPublished(ctx context.Context) (int, error) {
	return count(ctx, r.DB, "count published articles",
		"SELECT COUNT(*) FROM blog_articles WHERE is_published = TRUE")
}
