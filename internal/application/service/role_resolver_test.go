package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sangkips/kasirpos/internal/config"
	"github.com/sangkips/kasirpos/internal/domain/enum"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		AdminEmail:  "admin@foodkasir.com",
		StaffEmails: []string{"staff@foodkasir.com", "staff1@foodkasir.com"},
		DefaultRole: "user",
	}
}

func TestRoleResolver_Resolve(t *testing.T) {
	r := NewRoleResolver(testAuthConfig())

	assert.Equal(t, enum.RoleAdmin, r.Resolve("admin@foodkasir.com"))
	assert.Equal(t, enum.RoleStaff, r.Resolve("staff@foodkasir.com"))
	assert.Equal(t, enum.RoleStaff, r.Resolve("staff1@foodkasir.com"))
	assert.Equal(t, enum.RoleUser, r.Resolve("someone@example.com"))
	assert.Equal(t, enum.RoleUser, r.Resolve(""))
}

func TestRoleResolver_AdminEmailIsExactMatch(t *testing.T) {
	r := NewRoleResolver(testAuthConfig())

	assert.Equal(t, enum.RoleUser, r.Resolve("Admin@foodkasir.com"))
	assert.Equal(t, enum.RoleUser, r.Resolve("admin@foodkasir.com "))
}

func TestRoleResolver_DefaultNeverAdmin(t *testing.T) {
	cfg := testAuthConfig()
	cfg.DefaultRole = "admin"
	r := NewRoleResolver(cfg)

	assert.Equal(t, enum.RoleUser, r.Resolve("someone@example.com"))
}

func TestRoleResolver_StaffDefault(t *testing.T) {
	cfg := testAuthConfig()
	cfg.DefaultRole = "staff"
	r := NewRoleResolver(cfg)

	assert.Equal(t, enum.RoleStaff, r.Resolve("someone@example.com"))
	assert.Equal(t, enum.RoleAdmin, r.Resolve("admin@foodkasir.com"))
}
