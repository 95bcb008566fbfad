package domain

// UserProfile is the authenticated user as returned by the auth endpoints.
// Immutable for the lifetime of a session, replaced wholesale on login.
type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}
