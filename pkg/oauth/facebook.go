package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const facebookGraphURL = "https://graph.facebook.com/me"

type facebookUserInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// FacebookVerifier validates Facebook access tokens via the Graph API.
type FacebookVerifier struct {
	client *http.Client
}

// NewFacebookVerifier creates a new Facebook verifier
func NewFacebookVerifier() *FacebookVerifier {
	return &FacebookVerifier{client: &http.Client{Timeout: 10 * time.Second}}
}

func (v *FacebookVerifier) Provider() string {
	return "facebook"
}

func (v *FacebookVerifier) VerifyToken(ctx context.Context, token string) (*UserInfo, error) {
	q := url.Values{}
	q.Set("access_token", token)
	q.Set("fields", "id,name,email,picture")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facebookGraphURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from Facebook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrTokenRejected
	}

	var info facebookUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode Facebook user info: %w", err)
	}

	return &UserInfo{
		ID:      "fb-" + info.ID,
		Name:    info.Name,
		Email:   info.Email,
		Picture: info.Picture.Data.URL,
	}, nil
}
