// TheSportsDB API client
//
// Response types based on https://www.thesportsdb.com/api.php. The API wraps
// results in arrays named after the endpoint (events, event, teams) and
// returns null instead of an empty array when nothing matches.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"sportsdeck/internal/models"
	"sportsdeck/internal/shared"
)

const (
	defaultSportsBaseURL = "https://www.thesportsdb.com/api/v1/json/3"
	defaultRateLimit     = 5.0
)

// SportsAPI is the sports-data surface consumed by callers. [SportsService]
// is the production implementation.
type SportsAPI interface {
	SeasonEvents(ctx context.Context, leagueID, season string) ([]models.Event, error)
	PastLeagueEvents(ctx context.Context, leagueID string) ([]models.Event, error)
	SearchEvents(ctx context.Context, query string) ([]models.Event, error)
	EventDetails(ctx context.Context, eventID string) (*models.Event, error)
	TeamDetails(ctx context.Context, teamID string) (*models.Team, error)
}

// SportsService reads events and teams from TheSportsDB.
type SportsService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSportsService creates a sports-data client. rps caps requests per
// second against the free tier; values <= 0 use the default of 5.
func NewSportsService(baseURL string, client *http.Client, rps float64) *SportsService {
	if baseURL == "" {
		baseURL = defaultSportsBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if rps <= 0 {
		rps = defaultRateLimit
	}

	return &SportsService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// doRequest performs a rate-limited GET and decodes the JSON body into result.
func (s *SportsService) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: sports API status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SeasonEvents retrieves all events for a league season.
func (s *SportsService) SeasonEvents(ctx context.Context, leagueID, season string) ([]models.Event, error) {
	endpoint := fmt.Sprintf("/eventsseason.php?id=%s&s=%s", url.QueryEscape(leagueID), url.QueryEscape(season))

	var response struct {
		Events []models.Event `json:"events"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	// a null/absent array means no events, not an error
	return response.Events, nil
}

// PastLeagueEvents retrieves the most recent finished events for a league.
func (s *SportsService) PastLeagueEvents(ctx context.Context, leagueID string) ([]models.Event, error) {
	endpoint := fmt.Sprintf("/eventspastleague.php?id=%s", url.QueryEscape(leagueID))

	var response struct {
		Events []models.Event `json:"events"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return response.Events, nil
}

// SearchEvents performs a free-text event search. The search endpoint wraps
// its results in "event", unlike the lookup endpoints' "events".
func (s *SportsService) SearchEvents(ctx context.Context, query string) ([]models.Event, error) {
	endpoint := fmt.Sprintf("/searchevents.php?e=%s", url.QueryEscape(query))

	var response struct {
		Event []models.Event `json:"event"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return response.Event, nil
}

// EventDetails retrieves a single event by ID.
func (s *SportsService) EventDetails(ctx context.Context, eventID string) (*models.Event, error) {
	endpoint := fmt.Sprintf("/lookupevent.php?id=%s", url.QueryEscape(eventID))

	var response struct {
		Events []models.Event `json:"events"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if len(response.Events) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrEventNotFound, eventID)
	}
	return &response.Events[0], nil
}

// TeamDetails retrieves a single team by ID.
func (s *SportsService) TeamDetails(ctx context.Context, teamID string) (*models.Team, error) {
	endpoint := fmt.Sprintf("/lookupteam.php?id=%s", url.QueryEscape(teamID))

	var response struct {
		Teams []models.Team `json:"teams"`
	}
	if err := s.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if len(response.Teams) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrTeamNotFound, teamID)
	}
	return &response.Teams[0], nil
}
