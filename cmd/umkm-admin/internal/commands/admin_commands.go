package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/01moynul/umkm-web-golang/internal/database"
	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Deps is what the admin commands need from a live environment.
type Deps struct {
	DB     *sqlx.DB
	Admins store.AdminRepository
	Log    *zap.Logger
}

// Connector opens the dependencies for one command run. The returned func
// releases them.
type Connector func(ctx context.Context) (*Deps, func() error, error)

// AdminCommandHandler implements the maintenance commands.
type AdminCommandHandler struct {
	connect Connector
}

func NewAdminCommandHandler(connect Connector) *AdminCommandHandler {
	return &AdminCommandHandler{connect: connect}
}

func (h *AdminCommandHandler) with(cmd *cobra.Command, fn func(ctx context.Context, deps *Deps) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	deps, release, err := h.connect(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx, deps)
}

// MigrateCmd applies the embedded schema.
func (h *AdminCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	return h.with(cmd, func(ctx context.Context, deps *Deps) error {
		if err := database.Migrate(ctx, deps.DB); err != nil {
			return err
		}
		deps.Log.Info("schema applied", zap.Int("statements", len(database.SchemaStatements())))
		fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date.")
		return nil
	})
}

// CreateAdminCmd creates an admin account from flags.
func (h *AdminCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")

	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid --email is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("--password must be at least 8 characters")
	}
	if strings.TrimSpace(name) == "" {
		name = "Administrator"
	}

	admin, err := models.NewAdminProfile(email, password, name, role)
	if err != nil {
		return err
	}

	return h.with(cmd, func(ctx context.Context, deps *Deps) error {
		if err := deps.Admins.Create(ctx, admin); err != nil {
			return fmt.Errorf("create admin %s: %w", admin.Email, err)
		}
		deps.Log.Info("admin created", zap.String("id", admin.ID), zap.String("role", admin.Role))
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s (%s)\n", admin.Role, admin.Email, admin.ID)
		return nil
	})
}

// CheckAdminCmd reports whether an email belongs to an admin account.
func (h *AdminCommandHandler) CheckAdminCmd(cmd *cobra.Command, _ []string) error {
	email, _ := cmd.Flags().GetString("email")
	email = strings.ToLower(strings.TrimSpace(email))

	return h.with(cmd, func(ctx context.Context, deps *Deps) error {
		if email == "" {
			exists, err := deps.Admins.Any(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin accounts exist: %t\n", exists)
			return nil
		}

		admin, err := deps.Admins.GetByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("%s is not an admin: %w", email, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is a %s (%s)\n", admin.Email, admin.Role, admin.ID)
		return nil
	})
}

// InitAdminCommands registers the maintenance commands on root.
func InitAdminCommands(rootCmd *cobra.Command, connect Connector) error {
	handler := NewAdminCommandHandler(connect)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE:  handler.MigrateCmd,
	}

	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE:  handler.CreateAdminCmd,
	}
	createAdminCmd.Flags().String("email", "", "Login email of the new admin")
	createAdminCmd.Flags().String("password", "", "Password (at least 8 characters)")
	createAdminCmd.Flags().String("name", "", "Full name")
	createAdminCmd.Flags().String("role", models.RoleAdmin, "Role: admin or super_admin")
	if err := createAdminCmd.MarkFlagRequired("email"); err != nil {
		return err
	}
	if err := createAdminCmd.MarkFlagRequired("password"); err != nil {
		return err
	}

	checkAdminCmd := &cobra.Command{
		Use:   "check-admin",
		Short: "Check whether an email has an admin account",
		Long: `Without --email, reports whether any admin account exists yet
(the first-run setup page is only offered while none does).`,
		RunE: handler.CheckAdminCmd,
	}
	checkAdminCmd.Flags().String("email", "", "Email to look up")

	rootCmd.AddCommand(migrateCmd, createAdminCmd, checkAdminCmd)
	return nil
}
