package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// AdminProfile is the model for the 'admin_profiles' table.
// Only rows in this table may use the admin panel.
type AdminProfile struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

func (a *AdminProfile) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// NewAdminProfile builds a profile with a bcrypt hash of the given password.
// An empty role means a regular admin.
func NewAdminProfile(email, password, fullName, role string) (*AdminProfile, error) {
	if role == "" {
		role = RoleAdmin
	}
	if role != RoleAdmin && role != RoleSuperAdmin {
		return nil, fmt.Errorf("unknown admin role %q", role)
	}

	var pw Password
	if err := pw.Set(password); err != nil {
		return nil, err
	}
	return &AdminProfile{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: pw.Hash,
		FullName:     fullName,
		Role:         role,
	}, nil
}

// CheckPassword reports whether plaintext matches the stored hash.
func (a *AdminProfile) CheckPassword(plaintext string) (bool, error) {
	pw := Password{Hash: a.PasswordHash}
	return pw.Matches(plaintext)
}
