package tui

import (
	"github.com/MKhiriev/fraud-shield/internal/story"
	"github.com/MKhiriev/fraud-shield/models"
)

// Page names registered in [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
	pageStory     = "story"
	pageResults   = "results"
	pageNews      = "news"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Err  error
	User models.UserSnapshot
}

// RegisterResult is produced by the signup command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown by the menu after a successful signup.
type RegisterSuccessNotice struct {
	Username string
}

// LogoutNotice is shown by the menu after logout or an expired session.
type LogoutNotice struct {
	Message string
}

// sessionExpiredMsg is emitted by a page whose request was rejected as
// unauthorized. The root shows an overlay and returns to the menu.
type sessionExpiredMsg struct{}

type dashboardEnterMsg struct{}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type leaderboardLoadedMsg struct {
	generation uint64
	entries    []models.LeaderboardEntry
	err        error
}

type historyLoadedMsg struct {
	records []models.PlayRecord
	err     error
}

type logoutDoneMsg struct {
	err error
}

type tickKind int

const (
	tickAdvance tickKind = iota
	tickEnterQuiz
	tickNextQuestion
)

// storyTickMsg fires after a dwell interval. Ticks whose generation differs
// from the session's are stale and ignored.
type storyTickMsg struct {
	generation uint64
	kind       tickKind
}

type gameFinishedMsg struct {
	result story.Result
}

type playSavedMsg struct {
	record models.PlayRecord
	err    error
}

type rewardClaimedMsg struct {
	reward models.GameReward
	record models.PlayRecord
	err    error
}

type newsLoadedMsg struct {
	generation uint64
	resp       models.NewsResponse
	err        error
}
