package domain

import "errors"

// PlaceholderUsername is the display name stored after login/signup. The
// backend's auth responses carry only {_id, token, admin}, so the client
// cannot know the real username or email; the upstream web client stores
// this placeholder with an empty email and we preserve that contract gap
// rather than guess.
const PlaceholderUsername = "Utilisateur"

var (
	// ErrAuthFailed covers every login/signup failure. The backend does not
	// distinguish bad credentials from server errors in what it surfaces,
	// so neither do we.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotAuthenticated is returned by operations that require a session
	// bearer token when none is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden is returned when the current user lacks admin rights.
	ErrForbidden = errors.New("access forbidden")
)

// User identifies the authenticated principal.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
}
