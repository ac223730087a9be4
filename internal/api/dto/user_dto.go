package dto

// CredentialsRequest payload for login and signup.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LastEmailResponse carries the login form hint.
type LastEmailResponse struct {
	Email *string `json:"email"`
}
