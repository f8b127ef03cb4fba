package commands

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/01moynul/umkm-web-golang/internal/database"
	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/01moynul/umkm-web-golang/internal/store/storetest"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRoot(t *testing.T, deps *Deps) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "umkm-admin", SilenceUsage: true, SilenceErrors: true}
	connect := func(context.Context) (*Deps, func() error, error) {
		return deps, func() error { return nil }, nil
	}
	require.NoError(t, InitAdminCommands(root, connect))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestMigrateCmd(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	for _, stmt := range database.SchemaStatements() {
		sqlMock.ExpectExec(regexp.QuoteMeta(stmt)).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	root, out := newRoot(t, &Deps{DB: sqlx.NewDb(mockDB, "mysql"), Log: zap.NewNop()})
	root.SetArgs([]string{"migrate"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "up to date")
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCreateAdminCmd(t *testing.T) {
	s, mocks := storetest.NewStore()
	mocks.Admins.On("Create", mock.Anything, mock.MatchedBy(func(a *models.AdminProfile) bool {
		ok, err := a.CheckPassword("admin123456")
		return a.Email == "admin@umkm.com" && a.Role == models.RoleSuperAdmin && ok && err == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.AdminProfile).ID = "new-id"
	}).Return(nil)

	root, out := newRoot(t, &Deps{Admins: s.Admins, Log: zap.NewNop()})
	root.SetArgs([]string{"create-admin", "--email", "Admin@UMKM.com", "--password", "admin123456", "--role", "super_admin"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Created super_admin admin@umkm.com (new-id)")
	mocks.AssertExpectations(t)
}

func TestCreateAdminCmd_Validation(t *testing.T) {
	s, mocks := storetest.NewStore()

	cases := [][]string{
		{"create-admin", "--email", "not-an-email", "--password", "admin123456"},
		{"create-admin", "--email", "a@b.c", "--password", "short"},
		{"create-admin", "--email", "a@b.c", "--password", "admin123456", "--role", "owner"},
		{"create-admin", "--password", "admin123456"},
	}
	for _, args := range cases {
		root, _ := newRoot(t, &Deps{Admins: s.Admins, Log: zap.NewNop()})
		root.SetArgs(args)
		assert.Error(t, root.Execute(), args)
	}
	mocks.Admins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateAdminCmd_Duplicate(t *testing.T) {
	s, mocks := storetest.NewStore()
	mocks.Admins.On("Create", mock.Anything, mock.Anything).Return(store.ErrDuplicate)

	root, _ := newRoot(t, &Deps{Admins: s.Admins, Log: zap.NewNop()})
	root.SetArgs([]string{"create-admin", "--email", "a@b.c", "--password", "admin123456"})

	err := root.Execute()
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestCheckAdminCmd(t *testing.T) {
	s, mocks := storetest.NewStore()
	mocks.Admins.On("GetByEmail", mock.Anything, "admin@umkm.com").
		Return(&models.AdminProfile{ID: "a1", Email: "admin@umkm.com", Role: models.RoleAdmin}, nil)
	mocks.Admins.On("GetByEmail", mock.Anything, "nobody@umkm.com").Return(nil, store.ErrNotFound)
	mocks.Admins.On("Any", mock.Anything).Return(true, nil)

	root, out := newRoot(t, &Deps{Admins: s.Admins, Log: zap.NewNop()})
	root.SetArgs([]string{"check-admin", "--email", " ADMIN@umkm.com"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "admin@umkm.com is a admin (a1)")

	root, _ = newRoot(t, &Deps{Admins: s.Admins, Log: zap.NewNop()})
	root.SetArgs([]string{"check-admin", "--email", "nobody@umkm.com"})
	assert.ErrorIs(t, root.Execute(), store.ErrNotFound)

	root, out = newRoot(t, &Deps{Admins: s.Admins, Log: zap.NewNop()})
	root.SetArgs([]string{"check-admin"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Admin accounts exist: true")
}

func TestConnectErrorIsReturned(t *testing.T) {
	root := &cobra.Command{Use: "umkm-admin", SilenceUsage: true, SilenceErrors: true}
	boom := errors.New("no database")
	require.NoError(t, InitAdminCommands(root, func(context.Context) (*Deps, func() error, error) {
		return nil, nil, boom
	}))
	root.SetArgs([]string{"check-admin"})

	assert.ErrorIs(t, root.Execute(), boom)
}
