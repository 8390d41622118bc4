package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUserInfo represents user information from Google
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleVerifier validates Google access tokens by fetching the
// userinfo endpoint with the presented token.
type GoogleVerifier struct{}

// NewGoogleVerifier creates a new Google verifier
func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{}
}

func (v *GoogleVerifier) Provider() string {
	return "google"
}

func (v *GoogleVerifier) VerifyToken(ctx context.Context, token string) (*UserInfo, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(ctx, src)

	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from Google: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrTokenRejected
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode Google user info: %w", err)
	}

	return &UserInfo{
		ID:      "google-" + info.ID,
		Name:    info.Name,
		Email:   info.Email,
		Picture: info.Picture,
	}, nil
}
