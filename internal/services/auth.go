// DummyJSON auth API client
//
// https://dummyjson.com/docs/auth: POST /login with username/password,
// returns the user profile plus access and refresh tokens.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"sportsdeck/internal/models"
	"sportsdeck/internal/shared"
)

const defaultAuthBaseURL = "https://dummyjson.com/auth"

// AuthService authenticates against the remote demo identity provider.
type AuthService struct {
	baseURL    string
	httpClient *http.Client
}

// NewAuthService creates an auth client. A nil client falls back to
// [http.DefaultClient]; an empty baseURL falls back to DummyJSON.
func NewAuthService(baseURL string, client *http.Client) *AuthService {
	if baseURL == "" {
		baseURL = defaultAuthBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &AuthService{baseURL: baseURL, httpClient: client}
}

// loginResponse is the success payload. Current API versions return
// accessToken/refreshToken; older ones returned a bare token field.
type loginResponse struct {
	models.RemoteUser
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Token        string `json:"token"`
}

// Login posts credentials and returns the established session.
//
// On a non-2xx response the server's message field is surfaced verbatim when
// present. Rejected credentials (400/401) wrap [shared.ErrInvalidCredentials];
// every other failure wraps [shared.ErrAuthFailed].
func (a *AuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Session{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		cause := shared.ErrAuthFailed
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			cause = shared.ErrInvalidCredentials
		}

		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return models.Session{}, fmt.Errorf("%w: %s", cause, errResp.Message)
		}
		return models.Session{}, fmt.Errorf("%w: status %d", cause, resp.StatusCode)
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return models.Session{}, fmt.Errorf("%w: malformed response: %v", shared.ErrAuthFailed, err)
	}

	accessToken := lr.AccessToken
	if accessToken == "" {
		accessToken = lr.Token
	}
	if accessToken == "" {
		return models.Session{}, fmt.Errorf("%w: response carried no token", shared.ErrAuthFailed)
	}

	return models.Session{
		User: lr.RemoteUser,
		Token: &oauth2.Token{
			AccessToken:  accessToken,
			RefreshToken: lr.RefreshToken,
		},
	}, nil
}
