package models

// User is a registered account. Fields are fixed at registration; there is
// no profile-edit path.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
	Bio          string `json:"bio,omitempty"`
}

// Identity is the user bound to the current session, or the zero value for
// an anonymous request.
type Identity struct {
	UserID   int64
	Username string
}

// Authenticated reports whether the identity belongs to a logged-in user.
func (i Identity) Authenticated() bool {
	return i.UserID != 0
}
