package repository

import (
	"context"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	domainRepo "github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
	"github.com/sangkips/kasirpos/pkg/utils"
)

// DirectoryUser is a seed entry for the in-memory directory.
type DirectoryUser struct {
	User     entity.User
	Password string
}

type memoryDirectory struct {
	byUsername map[string]entity.User
	byEmail    map[string]entity.User
}

// NewMemoryDirectory creates the fixed-list user directory. Passwords
// are bcrypt-hashed at construction; the plain text is never retained.
func NewMemoryDirectory(seed []DirectoryUser) (domainRepo.UserDirectory, error) {
	d := &memoryDirectory{
		byUsername: make(map[string]entity.User, len(seed)),
		byEmail:    make(map[string]entity.User, len(seed)),
	}
	for _, su := range seed {
		hash, err := utils.HashPassword(su.Password)
		if err != nil {
			return nil, err
		}
		u := su.User
		u.PasswordHash = hash
		d.byUsername[u.Username] = u
		if u.Email != "" {
			d.byEmail[u.Email] = u
		}
	}
	return d, nil
}

// DefaultUsers returns the directory every fresh install starts with.
func DefaultUsers() []DirectoryUser {
	return []DirectoryUser{
		{
			User: entity.User{
				ID:       "1",
				Username: "admin",
				Name:     "Administrator",
				Email:    "admin@foodkasir.com",
			},
			Password: "admin123",
		},
		{
			User: entity.User{
				ID:       "2",
				Username: "staff",
				Name:     "Staff Kasir",
				Email:    "staff@foodkasir.com",
			},
			Password: "staff123",
		},
	}
}

func (d *memoryDirectory) Authenticate(ctx context.Context, username, password string) (*entity.User, string, error) {
	u, ok := d.byUsername[username]
	if !ok {
		u, ok = d.byEmail[username]
	}
	if !ok {
		return nil, "", apperror.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		return nil, "", apperror.ErrInvalidCredentials
	}
	user := u
	return &user, "", nil
}

// Verify trusts the local cache: a cached profile is restored without
// re-validating against the directory.
func (d *memoryDirectory) Verify(ctx context.Context, token string, cached *entity.User) (*entity.User, error) {
	if cached == nil {
		return nil, apperror.ErrInvalidToken
	}
	return cached, nil
}

func (d *memoryDirectory) Logout(ctx context.Context, token string) error {
	return nil
}
