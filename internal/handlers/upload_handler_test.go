package handlers

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var b bytes.Buffer
	writer := multipart.NewWriter(&b)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &b)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func serveUpload(env *testEnv, req *http.Request) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/upload", env.h.UploadFile)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadFile_Image(t *testing.T) {
	env := newTestEnv(t)
	png, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)

	// The client-side name is ignored; the extension comes from the content.
	w := serveUpload(env, uploadRequest(t, "file", "logo.exe", png))

	require.Equal(t, http.StatusOK, w.Code)
	url := decode(t, w)["url"].(string)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	saved, err := os.ReadFile(filepath.Join(env.h.Upload.Dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, png, saved)
}

func TestUploadFile_RejectsNonImage(t *testing.T) {
	env := newTestEnv(t)

	w := serveUpload(env, uploadRequest(t, "file", "photo.png", []byte("#!/bin/sh\necho hi\n")))

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	entries, err := os.ReadDir(env.h.Upload.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadFile_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	w := serveUpload(env, uploadRequest(t, "image", "a.png", []byte("x")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadFile_TooLarge(t *testing.T) {
	env := newTestEnv(t)
	env.h.Upload.MaxBytes = 64
	png, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)
	big := append(png, bytes.Repeat([]byte{0}, 128)...)

	w := serveUpload(env, uploadRequest(t, "file", "big.png", big))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
