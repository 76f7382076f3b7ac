package tui

import (
	"github.com/MKhiriev/sparknest-admin/models"
)

// Page names understood by RootModel.
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
	pageList      = "list"
	pageForm      = "form"
)

// NavigateTo switches RootModel to Page. A non-nil Payload is delivered to
// the page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// noticeMsg carries a success message to the page being opened.
type noticeMsg struct {
	text string
}

// openListMsg opens the list of kind, optionally with a notice.
type openListMsg struct {
	kind   models.ResourceKind
	notice string
}

// openFormMsg opens the form on draft.
type openFormMsg struct {
	draft models.Draft
}

type loginDoneMsg struct {
	session models.Session
	err     error
}

type registerDoneMsg struct {
	message string
	err     error
}

type logoutDoneMsg struct {
	err error
}

type statsLoadedMsg struct {
	stats models.DashboardStats
}

type listLoadedMsg struct {
	kind  models.ResourceKind
	items []models.Entity
	err   error
}

type deleteDoneMsg struct {
	err error
}

type markReadDoneMsg struct {
	id  models.ID
	err error
}

type savedMsg struct {
	kind    models.ResourceKind
	created bool
	err     error
}

type copiedMsg struct {
	value string
	err   error
}
