package email

import (
	"fmt"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"go.uber.org/zap"
)

// Sender is what the handlers use to send mail.
type Sender interface {
	Send(to, subject, body string) error
}

// LogSender is our placeholder mailer: it writes the mail to the log
// instead of delivering it.
type LogSender struct {
	Log *zap.Logger
}

func (s *LogSender) Send(to, subject, body string) error {
	s.Log.Info("outgoing email (not delivered)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// SendContactNotification tells the company that a visitor left a message.
// Nothing is sent when the company has no email configured.
func SendContactNotification(s Sender, company *models.CompanyInfo, m *models.ContactMessage) error {
	if company == nil || company.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Pesan baru dari %s: %s", m.Name, m.Subject)
	phone := "-"
	if m.Phone != nil {
		phone = *m.Phone
	}
	body := fmt.Sprintf(
		"Nama: %s\nEmail: %s\nTelepon: %s\n\n%s",
		m.Name, m.Email, phone, m.Message,
	)
	return s.Send(company.Email, subject, body)
}
