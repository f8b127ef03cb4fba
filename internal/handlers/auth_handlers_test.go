package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAdmin(t *testing.T, id, role string) *models.AdminProfile {
	t.Helper()
	a, err := models.NewAdminProfile("admin@umkm.com", "admin123456", "Administrator UMKM", role)
	require.NoError(t, err)
	a.ID = id
	return a
}

func TestLogin_ByEmail(t *testing.T) {
	env := newTestEnv(t)
	admin := testAdmin(t, "admin-1", models.RoleSuperAdmin)
	env.mocks.Admins.On("GetByEmail", mock.Anything, "admin@umkm.com").Return(admin, nil)

	w := do(t, http.MethodPost, "/login", "/login",
		map[string]any{"identifier": " Admin@UMKM.com ", "password": "admin123456"}, env.h.Login)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	token := body["token"].(string)
	claims, err := env.h.Tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLogin_ByAdminID(t *testing.T) {
	env := newTestEnv(t)
	admin := testAdmin(t, "7f1c0f4e-0000-4000-8000-000000000001", models.RoleAdmin)
	env.mocks.Admins.On("GetByID", mock.Anything, admin.ID).Return(admin, nil)

	w := do(t, http.MethodPost, "/login", "/login",
		map[string]any{"identifier": admin.ID, "password": "admin123456"}, env.h.Login)

	assert.Equal(t, http.StatusOK, w.Code)
	env.mocks.Admins.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestLogin_SameAnswerForUnknownAndWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	admin := testAdmin(t, "admin-1", models.RoleAdmin)
	env.mocks.Admins.On("GetByEmail", mock.Anything, "admin@umkm.com").Return(admin, nil)
	env.mocks.Admins.On("GetByID", mock.Anything, "nobody").Return(nil, store.ErrNotFound)

	wrongPassword := do(t, http.MethodPost, "/login", "/login",
		map[string]any{"identifier": "admin@umkm.com", "password": "nope-nope"}, env.h.Login)
	unknown := do(t, http.MethodPost, "/login", "/login",
		map[string]any{"identifier": "nobody", "password": "admin123456"}, env.h.Login)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknown.Body.String())
}

func TestLogin_StoreError(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Admins.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := do(t, http.MethodPost, "/login", "/login",
		map[string]any{"identifier": "a@b.c", "password": "x"}, env.h.Login)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSetupStatus(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Admins.On("Any", mock.Anything).Return(false, nil)

	w := do(t, http.MethodGet, "/setup/status", "/setup/status", nil, env.h.GetSetupStatus)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"adminExists":false}`, w.Body.String())
}

func TestCreateFirstAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Admins.On("Any", mock.Anything).Return(false, nil).Once()
	env.mocks.Admins.On("Create", mock.Anything, mock.MatchedBy(func(a *models.AdminProfile) bool {
		return a.Role == models.RoleSuperAdmin && a.Email == "owner@umkm.com" && a.PasswordHash != ""
	})).Return(nil)

	body := map[string]any{"email": "owner@umkm.com", "password": "rahasia123", "fullName": "Pemilik", "role": "admin"}
	w := do(t, http.MethodPost, "/setup/first-admin", "/setup/first-admin", body, env.h.CreateFirstAdmin)
	assert.Equal(t, http.StatusCreated, w.Code)

	env.mocks.Admins.On("Any", mock.Anything).Return(true, nil).Once()
	w = do(t, http.MethodPost, "/setup/first-admin", "/setup/first-admin", body, env.h.CreateFirstAdmin)
	assert.Equal(t, http.StatusConflict, w.Code)

	env.mocks.Admins.AssertNumberOfCalls(t, "Create", 1)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	admin := testAdmin(t, "admin-1", models.RoleAdmin)
	env.mocks.Admins.On("GetByID", mock.Anything, "admin-1").Return(admin, nil)
	env.mocks.Admins.On("UpdatePassword", mock.Anything, "admin-1", mock.MatchedBy(func(hash string) bool {
		p := models.Password{Hash: hash}
		ok, err := p.Matches("passwordBaru1")
		return err == nil && ok
	})).Return(nil)

	w := do(t, http.MethodPatch, "/me/password", "/me/password",
		map[string]any{"currentPassword": "salah-salah", "newPassword": "passwordBaru1"},
		asAdmin("admin-1", models.RoleAdmin), env.h.ChangePassword)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, http.MethodPatch, "/me/password", "/me/password",
		map[string]any{"currentPassword": "admin123456", "newPassword": "passwordBaru1"},
		asAdmin("admin-1", models.RoleAdmin), env.h.ChangePassword)
	assert.Equal(t, http.StatusOK, w.Code)

	env.mocks.Admins.AssertNumberOfCalls(t, "UpdatePassword", 1)
}

func TestGetMe(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Admins.On("GetByID", mock.Anything, "admin-1").Return(testAdmin(t, "admin-1", models.RoleAdmin), nil)

	w := do(t, http.MethodGet, "/me", "/me", nil, asAdmin("admin-1", models.RoleAdmin), env.h.GetMe)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@umkm.com", decode(t, w)["admin"].(map[string]any)["email"])
}

func TestCreateAdmin_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.mocks.Admins.On("Create", mock.Anything, mock.Anything).Return(errors.Join(errors.New("create admin"), store.ErrDuplicate))

	w := do(t, http.MethodPost, "/admins", "/admins",
		map[string]any{"email": "staff@umkm.com", "password": "rahasia123", "fullName": "Staf"}, env.h.CreateAdmin)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAdmin_RejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	w := do(t, http.MethodPost, "/admins", "/admins",
		map[string]any{"email": "staff@umkm.com", "password": "rahasia123", "fullName": "Staf", "role": "owner"}, env.h.CreateAdmin)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
