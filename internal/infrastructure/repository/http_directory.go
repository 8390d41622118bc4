package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	domainRepo "github.com/sangkips/kasirpos/internal/domain/repository"
	"github.com/sangkips/kasirpos/pkg/apperror"
)

type httpDirectory struct {
	baseURL string
	client  *http.Client
}

// NewHTTPDirectory creates a directory delegating to a remote identity
// backend implementing the reference auth API (/auth/login,
// /auth/verify, /auth/logout).
func NewHTTPDirectory(baseURL string) domainRepo.UserDirectory {
	return &httpDirectory{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type remoteAuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *remoteUser `json:"user"`
}

type remoteUser struct {
	ID       json.Number `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     string      `json:"role"`
	Avatar   string      `json:"avatar"`
}

func (u *remoteUser) toEntity() *entity.User {
	return &entity.User{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
	}
}

func (d *httpDirectory) Authenticate(ctx context.Context, username, password string) (*entity.User, string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("auth backend unreachable: %v", err)
		return nil, "", apperror.ErrDirectoryOffline
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, "", apperror.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", apperror.NewAppError(resp.StatusCode, fmt.Sprintf("auth backend returned %d", resp.StatusCode))
	}

	var out remoteAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, "", err
	}
	if !out.Success || out.User == nil {
		return nil, "", apperror.ErrInvalidCredentials
	}
	return out.User.toEntity(), out.Token, nil
}

// Verify presents the cached token to the backend and discards the
// session if it is rejected.
func (d *httpDirectory) Verify(ctx context.Context, token string, cached *entity.User) (*entity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/auth/verify", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("auth backend unreachable: %v", err)
		return nil, apperror.ErrDirectoryOffline
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperror.ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewAppError(resp.StatusCode, fmt.Sprintf("auth backend returned %d", resp.StatusCode))
	}

	var out remoteAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if !out.Success || out.User == nil {
		return nil, apperror.ErrInvalidToken
	}
	return out.User.toEntity(), nil
}

// Logout is best effort: a failed notify never blocks local logout.
func (d *httpDirectory) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/auth/logout", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("logout notify failed: %v", err)
		return nil
	}
	resp.Body.Close()
	return nil
}
