package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/auth"
	"github.com/01moynul/umkm-web-golang/internal/cache"
	"github.com/01moynul/umkm-web-golang/internal/config"
	"github.com/01moynul/umkm-web-golang/internal/middleware"
	"github.com/01moynul/umkm-web-golang/internal/realtime"
	"github.com/01moynul/umkm-web-golang/internal/store/storetest"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// recordingSender captures mail instead of logging it.
type recordingSender struct {
	mock.Mock
}

func (s *recordingSender) Send(to, subject, body string) error {
	return s.Called(to, subject, body).Error(0)
}

type testEnv struct {
	h      *Handlers
	mocks  *storetest.Mocks
	logs   *observer.ObservedLogs
	mailer *recordingSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s, mocks := storetest.NewStore()
	core, logs := observer.New(zap.DebugLevel)
	mailer := new(recordingSender)
	hub := realtime.NewHub()
	t.Cleanup(hub.Close)

	h := &Handlers{
		Store:          s,
		Tokens:         auth.NewTokenManager("0123456789abcdef0123", time.Hour),
		Hub:            hub,
		Cache:          cache.Noop{},
		Mailer:         mailer,
		Log:            zap.New(core),
		Upload:         config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20},
		BaseURL:        "http://localhost:8080",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	return &testEnv{h: h, mocks: mocks, logs: logs, mailer: mailer}
}

// asAdmin mimics the auth middleware chain for handler tests.
func asAdmin(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextAdminID, id)
		c.Set(middleware.ContextAdminRole, role)
		c.Next()
	}
}

// do runs one request through a router that only knows pattern.
func do(t *testing.T, method, pattern, target string, body any, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Handle(method, pattern, handlers...)

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
