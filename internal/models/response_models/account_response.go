package response_models

type AccountLoginResponse struct {
	Token string      `json:"token"`
	User  CurrentUser `json:"user"`
}

// CurrentUser is the plaintext record kept under the current_user key for
// the demo authentication flow.
type CurrentUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	LoginAt int64  `json:"login_at"`
}
