package tui

import (
	"github.com/MKhiriev/go-work-tracker/models"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes both the login and the register flow.
type LoginResult struct {
	Err  error
	User models.User
}

// formInit prefills the entry form: a nil Entry means creation.
type formInit struct {
	Entry *models.WorkEntry
}

type entriesLoadedMsg struct {
	resp models.ListEntriesResponse
	err  error
}

type entrySavedMsg struct {
	err error
}

type entryDeletedMsg struct {
	err error
}

type statisticsLoadedMsg struct {
	stats models.Statistics
	err   error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type copiedMsg struct{}
