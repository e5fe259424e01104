package response

import (
	"time"

	"studio-booking/internal/usecase/commands"
)

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	}
}

// LoginFailure is the 401 detail payload: the attempt counter is shown
// to the user but never blocks further attempts.
type LoginFailure struct {
	Attempts    int  `json:"attempts"`
	LockWarning bool `json:"lock_warning"`
}
