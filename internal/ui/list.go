package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"sportsdeck/internal/models"
)

var _ list.Item = eventItem{}

// eventItem wraps [models.Event] to implement [list.Item].
type eventItem struct {
	event     models.Event
	favourite bool
}

func (i eventItem) FilterValue() string { return i.event.Name }

func (i eventItem) Title() string {
	if i.favourite {
		return fmt.Sprintf("★ %s", i.event.Name)
	}
	return i.event.Name
}

func (i eventItem) Description() string {
	desc := i.event.DisplayStatus()
	if i.event.Venue != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.event.Venue)
	}
	if i.event.HasScore() {
		desc = fmt.Sprintf("%s • %s-%s", desc, i.event.HomeScore, i.event.AwayScore)
	}
	return desc
}
