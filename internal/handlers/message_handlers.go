package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/01moynul/umkm-web-golang/internal/email"
	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/realtime"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	messagesTable = "contact_messages"

	// Used in reply templates until the company profile has been filled in.
	defaultCompanyName = "UMKM Berkah Jaya"
)

type ContactMessageInput struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required,max=255"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactMessage handles POST /v1/contact
func (h *Handlers) SubmitContactMessage(c *gin.Context) {
	var input ContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	msg := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   optionalString(strings.TrimSpace(input.Phone)),
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := h.Store.Messages.Create(ctx, msg); err != nil {
		h.fail(c, err, "Message")
		return
	}
	h.Hub.Publish(realtime.Event{Table: messagesTable, Type: realtime.EventInsert, ID: msg.ID})

	// The visitor already succeeded; a failed notification is only logged.
	company, err := h.Store.Company.Get(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.Log.Warn("company lookup for contact notification failed", zap.Error(err))
	}
	if err := email.SendContactNotification(h.Mailer, company, msg); err != nil {
		h.Log.Warn("contact notification failed", zap.String("messageID", msg.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// GetInbox handles GET /v1/admin/messages
// Each message carries ready-made WhatsApp and email reply links.
func (h *Handlers) GetInbox(c *gin.Context) {
	ctx := c.Request.Context()
	messages, err := h.Store.Messages.List(ctx)
	if err != nil {
		h.fail(c, err, "Messages")
		return
	}

	companyName := defaultCompanyName
	if company, err := h.Store.Company.Get(ctx); err == nil && company.Name != "" {
		companyName = company.Name
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.Log.Warn("company lookup for reply links failed", zap.Error(err))
	}

	inbox := make([]models.InboxMessage, 0, len(messages))
	for i := range messages {
		inbox = append(inbox, models.InboxMessage{
			ContactMessage: messages[i],
			Reply:          messages[i].ReplyLinks(companyName),
		})
	}
	c.JSON(http.StatusOK, gin.H{"messages": inbox})
}

// MarkMessageRead handles PATCH /v1/admin/messages/:id/read
func (h *Handlers) MarkMessageRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.Messages.MarkRead(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Message")
		return
	}
	h.Hub.Publish(realtime.Event{Table: messagesTable, Type: realtime.EventUpdate, ID: id})

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}

// DeleteMessage handles DELETE /v1/admin/messages/:id
func (h *Handlers) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.Messages.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Message")
		return
	}
	h.Hub.Publish(realtime.Event{Table: messagesTable, Type: realtime.EventDelete, ID: id})

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

// StreamMessageEvents handles GET /v1/admin/messages/ws
// Clients re-fetch the inbox whenever an event arrives.
func (h *Handlers) StreamMessageEvents(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return h.originAllowed(r.Header.Get("Origin"))
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	events, unsubscribe := h.Hub.Subscribe()
	defer unsubscribe()

	adminID := currentAdminID(c)
	h.Log.Debug("message feed connected", zap.String("adminID", adminID))
	if err := realtime.Stream(c.Request.Context(), conn, events); err != nil {
		h.Log.Debug("message feed closed", zap.String("adminID", adminID), zap.Error(err))
	}
}

// originAllowed applies the CORS origin list to websocket handshakes.
// A "*" entry allows any origin, as it does for the CORS middleware.
func (h *Handlers) originAllowed(origin string) bool {
	if origin == "" {
		return true
	}
	return slices.Contains(h.AllowedOrigins, "*") || slices.Contains(h.AllowedOrigins, origin)
}
