package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sportsdeck/internal/shared"
	tu "sportsdeck/internal/testing"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login", func(t *testing.T) {
		var gotPath, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": 1,
				"username": "emilys",
				"email": "emily.johnson@x.dummyjson.com",
				"firstName": "Emily",
				"lastName": "Johnson",
				"accessToken": "access-abc",
				"refreshToken": "refresh-def"
			}`))
		}))
		defer server.Close()

		svc := NewAuthService(server.URL, nil)
		session, err := svc.Login(ctx, "emilys", "emilyspass")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if gotPath != "/login" {
			t.Errorf("expected POST to /login, got %s", gotPath)
		}
		if !strings.Contains(gotBody, `"username":"emilys"`) {
			t.Errorf("expected credentials in body, got %s", gotBody)
		}
		if session.Token == nil || session.Token.AccessToken != "access-abc" {
			t.Errorf("expected access token, got %+v", session.Token)
		}
		if session.Token.RefreshToken != "refresh-def" {
			t.Errorf("expected refresh token, got %s", session.Token.RefreshToken)
		}
		if session.User.Username != "emilys" || session.User.ID != 1 {
			t.Errorf("expected user profile, got %+v", session.User)
		}
	})

	t.Run("legacy token field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": 1, "username": "emilys", "token": "legacy-tok"}`))
		}))
		defer server.Close()

		svc := NewAuthService(server.URL, nil)
		session, err := svc.Login(ctx, "emilys", "emilyspass")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if session.Token.AccessToken != "legacy-tok" {
			t.Errorf("expected legacy token fallback, got %s", session.Token.AccessToken)
		}
	})

	t.Run("server error message is surfaced verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "Invalid credentials"}`))
		}))
		defer server.Close()

		svc := NewAuthService(server.URL, nil)
		_, err := svc.Login(ctx, "emilys", "wrong")
		if !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if !strings.Contains(err.Error(), "Invalid credentials") {
			t.Errorf("expected server message in error, got %v", err)
		}
	})

	t.Run("401 without body maps to rejected credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		svc := NewAuthService(server.URL, nil)
		if _, err := svc.Login(ctx, "emilys", "wrong"); !errors.Is(err, shared.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("non-2xx without message falls back to status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`oops`))
		}))
		defer server.Close()

		svc := NewAuthService(server.URL, nil)
		_, err := svc.Login(ctx, "emilys", "emilyspass")
		if !errors.Is(err, shared.ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed, got %v", err)
		}
		if !strings.Contains(err.Error(), "status 500") {
			t.Errorf("expected status in error, got %v", err)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		svc := NewAuthService(server.URL, nil)
		_, err := svc.Login(ctx, "emilys", "emilyspass")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Fatalf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("body read failure", func(t *testing.T) {
		client := &http.Client{
			Transport: tu.NewMockRoundTripper(&http.Response{
				StatusCode: http.StatusOK,
				Body:       &tu.FCloser{},
			}, nil),
		}

		svc := NewAuthService("http://example.invalid", client)
		_, err := svc.Login(ctx, "emilys", "emilyspass")
		if err == nil || !strings.Contains(err.Error(), "failed to read response") {
			t.Fatalf("expected read failure, got %v", err)
		}
	})

	t.Run("2xx without token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": 1, "username": "emilys"}`))
		}))
		defer server.Close()

		svc := NewAuthService(server.URL, nil)
		if _, err := svc.Login(ctx, "emilys", "emilyspass"); !errors.Is(err, shared.ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed for missing token, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		svc := NewAuthService(server.URL, nil)
		if _, err := svc.Login(ctx, "emilys", "emilyspass"); !errors.Is(err, shared.ErrAuthFailed) {
			t.Fatalf("expected ErrAuthFailed for malformed body, got %v", err)
		}
	})

	t.Run("default base URL", func(t *testing.T) {
		svc := NewAuthService("", nil)
		if svc.baseURL != defaultAuthBaseURL {
			t.Errorf("expected default base URL, got %s", svc.baseURL)
		}
	})
}
