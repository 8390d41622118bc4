package service

import (
	"github.com/sangkips/kasirpos/internal/config"
	"github.com/sangkips/kasirpos/internal/domain/enum"
)

// RoleResolver derives an operator role from identity. The mapping is
// fixed at construction: the exact admin identity resolves to admin, an
// allow-list resolves to staff, everything else gets the configured
// default (never admin).
type RoleResolver struct {
	adminEmail  string
	staffEmails map[string]struct{}
	defaultRole enum.Role
}

// NewRoleResolver creates a resolver from the auth configuration.
func NewRoleResolver(cfg *config.AuthConfig) *RoleResolver {
	staff := make(map[string]struct{}, len(cfg.StaffEmails))
	for _, e := range cfg.StaffEmails {
		staff[e] = struct{}{}
	}

	defaultRole := enum.ParseRole(cfg.DefaultRole)
	if defaultRole == enum.RoleAdmin {
		// The default can never grant admin capabilities.
		defaultRole = enum.RoleUser
	}

	return &RoleResolver{
		adminEmail:  cfg.AdminEmail,
		staffEmails: staff,
		defaultRole: defaultRole,
	}
}

// Resolve maps an identity (email) to its role.
func (r *RoleResolver) Resolve(email string) enum.Role {
	if email != "" && email == r.adminEmail {
		return enum.RoleAdmin
	}
	if _, ok := r.staffEmails[email]; ok {
		return enum.RoleStaff
	}
	return r.defaultRole
}
