package models

// Event status strings as returned by TheSportsDB.
const (
	StatusUpcoming  = "Not Started"
	StatusLive      = "Match Live"
	StatusFinished  = "Match Finished"
	StatusPostponed = "Match Postponed"
)

// Event represents a sports event from TheSportsDB.
//
// Scores arrive as quoted numbers or null, so they stay strings here; an
// empty string means the score is not available yet.
type Event struct {
	ID          string `json:"idEvent"`
	Name        string `json:"strEvent"`
	League      string `json:"strLeague"`
	HomeTeam    string `json:"strHomeTeam"`
	AwayTeam    string `json:"strAwayTeam"`
	Date        string `json:"dateEvent"`
	Time        string `json:"strTime"`
	Venue       string `json:"strVenue"`
	Status      string `json:"strStatus"`
	Thumb       string `json:"strThumb"`
	HomeScore   string `json:"intHomeScore"`
	AwayScore   string `json:"intAwayScore"`
	Description string `json:"strDescriptionEN"`
}

// HasScore reports whether both scores are present.
func (e Event) HasScore() bool {
	return e.HomeScore != "" && e.AwayScore != ""
}

// DisplayStatus maps the raw status onto a short label for list views.
func (e Event) DisplayStatus() string {
	switch e.Status {
	case StatusLive:
		return "LIVE"
	case StatusFinished:
		return "FT"
	case StatusPostponed:
		return "PP"
	default:
		return e.Date
	}
}

// Team represents a team from TheSportsDB.
type Team struct {
	ID          string `json:"idTeam"`
	Name        string `json:"strTeam"`
	League      string `json:"strLeague"`
	Stadium     string `json:"strStadium"`
	Badge       string `json:"strBadge"`
	Description string `json:"strDescriptionEN"`
}
