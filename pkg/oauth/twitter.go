package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const twitterMeURL = "https://api.twitter.com/2/users/me?user.fields=profile_image_url"

type twitterUserInfo struct {
	Data struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Username        string `json:"username"`
		ProfileImageURL string `json:"profile_image_url"`
	} `json:"data"`
}

// TwitterVerifier validates Twitter bearer tokens via the v2 API.
type TwitterVerifier struct {
	client *http.Client
}

// NewTwitterVerifier creates a new Twitter verifier
func NewTwitterVerifier() *TwitterVerifier {
	return &TwitterVerifier{client: &http.Client{Timeout: 10 * time.Second}}
}

func (v *TwitterVerifier) Provider() string {
	return "twitter"
}

func (v *TwitterVerifier) VerifyToken(ctx context.Context, token string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twitterMeURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from Twitter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrTokenRejected
	}

	var info twitterUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode Twitter user info: %w", err)
	}

	// Twitter's v2 API does not expose the account email.
	return &UserInfo{
		ID:      "twitter-" + info.Data.ID,
		Name:    info.Data.Name,
		Picture: info.Data.ProfileImageURL,
	}, nil
}
