package session

// Session is the authenticated operator bound to one Telegram chat, the
// bot's equivalent of the SPA's persisted userInfo blob.
type Session struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// AuthError wraps failures of login, register and profile update so the
// view layer can show the message next to the form.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }
