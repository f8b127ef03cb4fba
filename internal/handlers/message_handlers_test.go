package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/realtime"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitContactMessage(t *testing.T) {
	env := newTestEnv(t)
	events, unsub := env.h.Hub.Subscribe()
	defer unsub()

	env.mocks.Messages.On("Create", mock.Anything, mock.MatchedBy(func(m *models.ContactMessage) bool {
		return m.Name == "Sari" && m.Phone == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.ContactMessage).ID = "m1"
	}).Return(nil)
	env.mocks.Company.On("Get", mock.Anything).
		Return(&models.CompanyInfo{Name: "UMKM Berkah Jaya", Email: "info@berkahjaya.id"}, nil)
	env.mailer.On("Send", "info@berkahjaya.id", "Pesan baru dari Sari: Pemesanan", mock.Anything).Return(nil)

	w := do(t, http.MethodPost, "/contact", "/contact", map[string]any{
		"name":    "Sari",
		"email":   "sari@example.com",
		"phone":   "   ",
		"subject": "Pemesanan",
		"message": "Bisa pesan 100 pcs?",
	}, env.h.SubmitContactMessage)

	require.Equal(t, http.StatusCreated, w.Code)
	select {
	case e := <-events:
		assert.Equal(t, realtime.Event{Table: "contact_messages", Type: realtime.EventInsert, ID: "m1"}, e)
	default:
		t.Fatal("no realtime event published")
	}
	env.mocks.AssertExpectations(t)
	env.mailer.AssertExpectations(t)
}

func TestSubmitContactMessage_NotificationFailureIsLogged(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Messages.On("Create", mock.Anything, mock.Anything).Return(nil)
	env.mocks.Company.On("Get", mock.Anything).Return(&models.CompanyInfo{Email: "info@berkahjaya.id"}, nil)
	env.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	w := do(t, http.MethodPost, "/contact", "/contact", map[string]any{
		"name": "Sari", "email": "sari@example.com", "subject": "Halo", "message": "Tes",
	}, env.h.SubmitContactMessage)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, env.logs.FilterMessage("contact notification failed").Len())
}

func TestSubmitContactMessage_Validation(t *testing.T) {
	env := newTestEnv(t)

	w := do(t, http.MethodPost, "/contact", "/contact", map[string]any{
		"name": "Sari", "email": "bukan-email", "subject": "Halo", "message": "Tes",
	}, env.h.SubmitContactMessage)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.mocks.Messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetInbox_ReplyLinks(t *testing.T) {
	env := newTestEnv(t)
	phone := "0812-3456"
	env.mocks.Messages.On("List", mock.Anything).Return([]models.ContactMessage{
		{ID: "m1", Name: "Sari", Email: "sari@example.com", Phone: &phone, Subject: "Harga"},
		{ID: "m2", Name: "Budi", Email: "budi@example.com", Subject: "Info"},
	}, nil)
	env.mocks.Company.On("Get", mock.Anything).Return(nil, store.ErrNotFound)

	w := do(t, http.MethodGet, "/messages", "/messages", nil, env.h.GetInbox)

	require.Equal(t, http.StatusOK, w.Code)
	messages := decode(t, w)["messages"].([]any)
	require.Len(t, messages, 2)

	first := messages[0].(map[string]any)
	reply := first["reply"].(map[string]any)
	assert.Equal(t, "m1", first["id"])
	assert.True(t, strings.HasPrefix(reply["whatsapp"].(string), "https://wa.me/08123456?text="))
	assert.Contains(t, reply["whatsapp"], "UMKM%20Berkah%20Jaya")
	assert.Equal(t, "mailto:sari@example.com?subject=Re%3A%20Harga", reply["email"])

	second := messages[1].(map[string]any)
	assert.NotContains(t, second["reply"].(map[string]any), "whatsapp")
}

func TestMarkMessageRead_PublishesUpdate(t *testing.T) {
	env := newTestEnv(t)
	events, unsub := env.h.Hub.Subscribe()
	defer unsub()
	env.mocks.Messages.On("MarkRead", mock.Anything, "m1").Return(nil)
	env.mocks.Messages.On("MarkRead", mock.Anything, "m2").Return(store.ErrNotFound)

	w := do(t, http.MethodPatch, "/messages/:id/read", "/messages/m1/read", nil, env.h.MarkMessageRead)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, realtime.EventUpdate, (<-events).Type)

	w = do(t, http.MethodPatch, "/messages/:id/read", "/messages/m2/read", nil, env.h.MarkMessageRead)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, events, 0)
}

func TestDeleteMessage_PublishesDelete(t *testing.T) {
	env := newTestEnv(t)
	events, unsub := env.h.Hub.Subscribe()
	defer unsub()
	env.mocks.Messages.On("Delete", mock.Anything, "m1").Return(nil)

	w := do(t, http.MethodDelete, "/messages/:id", "/messages/m1", nil, env.h.DeleteMessage)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, realtime.Event{Table: "contact_messages", Type: realtime.EventDelete, ID: "m1"}, <-events)
}

func TestStreamMessageEvents(t *testing.T) {
	env := newTestEnv(t)
	r := gin.New()
	r.GET("/messages/ws", asAdmin("admin-1", models.RoleAdmin), env.h.StreamMessageEvents)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/messages/ws"

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "http://localhost:3000")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return env.h.Hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	env.h.Hub.Publish(realtime.Event{Table: "contact_messages", Type: realtime.EventInsert, ID: "m7"})

	var got realtime.Event
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "m7", got.ID)
}

func TestStreamMessageEvents_WildcardOrigin(t *testing.T) {
	env := newTestEnv(t)
	env.h.AllowedOrigins = []string{"*"}
	r := gin.New()
	r.GET("/messages/ws", asAdmin("admin-1", models.RoleAdmin), env.h.StreamMessageEvents)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/messages/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": []string{"https://toko.example"}})
	require.NoError(t, err)
	conn.Close()
}

func TestOriginAllowed(t *testing.T) {
	h := &Handlers{AllowedOrigins: []string{"http://localhost:3000"}}
	assert.True(t, h.originAllowed(""))
	assert.True(t, h.originAllowed("http://localhost:3000"))
	assert.False(t, h.originAllowed("http://evil.example"))

	h.AllowedOrigins = []string{"http://localhost:3000", "*"}
	assert.True(t, h.originAllowed("http://evil.example"))
}
