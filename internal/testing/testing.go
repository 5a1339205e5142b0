// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"golang.org/x/oauth2"

	"sportsdeck/internal/models"
)

// MockAuthService is a test double for [services.AuthService]
type MockAuthService struct{}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (models.Session, error) {
	return models.Session{
		User:  models.RemoteUser{ID: 1, Username: username},
		Token: &oauth2.Token{AccessToken: "mock-token"},
	}, nil
}

// MockSportsService is a test double for [services.SportsService]
type MockSportsService struct{}

func (m *MockSportsService) SeasonEvents(ctx context.Context, leagueID, season string) ([]models.Event, error) {
	return []models.Event{}, nil
}

func (m *MockSportsService) PastLeagueEvents(ctx context.Context, leagueID string) ([]models.Event, error) {
	return []models.Event{}, nil
}

func (m *MockSportsService) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	return []models.Event{}, nil
}

func (m *MockSportsService) EventDetails(ctx context.Context, eventID string) (*models.Event, error) {
	return &models.Event{ID: eventID}, nil
}

func (m *MockSportsService) TeamDetails(ctx context.Context, teamID string) (*models.Team, error) {
	return &models.Team{ID: teamID}, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
