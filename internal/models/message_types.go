package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ContactMessage is the model for the 'contact_messages' table
type ContactMessage struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// MessageSummary is the slim row used by the dashboard "recent messages" list.
type MessageSummary struct {
	Name      string    `json:"name" db:"name"`
	Subject   string    `json:"subject" db:"subject"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReplyLinks are ready-made links the inbox uses to answer a message.
type ReplyLinks struct {
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email"`
}

// InboxMessage is a contact message as the admin inbox renders it.
type InboxMessage struct {
	ContactMessage
	Reply ReplyLinks `json:"reply"`
}

// ReplyLinks builds the wa.me and mailto links for this message.
// The WhatsApp link is omitted when the sender left no usable phone number.
func (m *ContactMessage) ReplyLinks(companyName string) ReplyLinks {
	links := ReplyLinks{
		Email: fmt.Sprintf("mailto:%s?subject=%s", m.Email, encodeComponent("Re: "+m.Subject)),
	}
	if m.Phone != nil {
		if digits := digitsOnly(*m.Phone); digits != "" {
			text := fmt.Sprintf("Halo %s, terima kasih telah menghubungi %s. Kami akan membantu Anda.", m.Name, companyName)
			links.WhatsApp = fmt.Sprintf("https://wa.me/%s?text=%s", digits, encodeComponent(text))
		}
	}
	return links
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeComponent escapes like a query component but keeps spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
