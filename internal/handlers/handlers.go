package handlers

import (
	"errors"
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/auth"
	"github.com/01moynul/umkm-web-golang/internal/cache"
	"github.com/01moynul/umkm-web-golang/internal/config"
	"github.com/01moynul/umkm-web-golang/internal/email"
	"github.com/01moynul/umkm-web-golang/internal/middleware"
	"github.com/01moynul/umkm-web-golang/internal/realtime"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store  *store.Store
	Tokens *auth.TokenManager
	Hub    *realtime.Hub
	Cache  cache.Cache
	Mailer email.Sender
	Log    *zap.Logger

	Upload         config.UploadConfig
	BaseURL        string
	AllowedOrigins []string
}

// fail turns a store error into the JSON error response. Unexpected
// errors are logged and hidden behind a generic message.
func (h *Handlers) fail(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": entity + " already exists"})
	default:
		h.Log.Error("store call failed",
			zap.String("route", c.FullPath()),
			zap.String("entity", entity),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// cached serves dest from the cache, or fills it with load and caches the result.
// A broken cache only costs a database round trip.
func (h *Handlers) cached(c *gin.Context, key string, dest any, load func() error) error {
	ctx := c.Request.Context()
	err := h.Cache.Get(ctx, key, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		h.Log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	if err := load(); err != nil {
		return err
	}
	if err := h.Cache.Set(ctx, key, dest); err != nil {
		h.Log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

func (h *Handlers) invalidate(c *gin.Context, keys ...string) {
	if err := h.Cache.Delete(c.Request.Context(), keys...); err != nil {
		h.Log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func currentAdminID(c *gin.Context) string {
	return c.GetString(middleware.ContextAdminID)
}

// optionalString maps an empty form value to NULL.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// boolOr returns the pointed-to value, or fallback when the field was omitted.
func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
