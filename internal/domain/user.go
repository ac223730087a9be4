package domain

// Credential is the single stored user record. The password is kept in
// plaintext; the credential store only simulates a user backend.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Matches reports whether the given pair equals the stored one.
func (c Credential) Matches(email, password string) bool {
	return c.Email != "" && c.Email == email && c.Password == password
}
