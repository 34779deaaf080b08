package models

// User is an identity-service account. Administrator privilege is not stored
// here; it is implied by the existence of an admins row for the user's id.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
