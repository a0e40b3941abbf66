package entity

// Identity holds the auth-provider fields the profile flows fall back
// on when no profile row exists for the signed-in user yet.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}
