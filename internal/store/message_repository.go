package store

import (
	"context"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MessageRepo struct {
	DB *sqlx.DB
}

func (r *MessageRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	if err := r.DB.SelectContext(ctx, &messages, "SELECT * FROM contact_messages ORDER BY created_at DESC"); err != nil {
		return nil, wrap("list contact messages", err)
	}
	return messages, nil
}

func (r *MessageRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	m.ID = uuid.NewString()
	m.IsRead = false
	m.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, is_read, created_at)
		VALUES (:id, :name, :email, :phone, :subject, :message, :is_read, :created_at)`
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return wrap("create contact message", err)
}

func (r *MessageRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE contact_messages SET is_read = TRUE WHERE id = ?", id)
	return expectRow("mark message read", res, err)
}

func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id)
	return expectRow("delete contact message", res, err)
}

func (r *MessageRepo) CountUnread(ctx context.Context) (int, error) {
	return count(ctx, r.DB, "count unread messages", "SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE")
}

func (r *MessageRepo) Recent(ctx context.Context, limit int) ([]models.MessageSummary, error) {
	out := []models.MessageSummary{}
	err := r.DB.SelectContext(ctx, &out,
		"SELECT name, subject, created_at FROM contact_messages ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, wrap("recent messages", err)
	}
	return out, nil
}
