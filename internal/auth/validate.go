package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/ticketflow/ticketflow/pkg/util"
)

// PasswordMinLength is the shortest accepted password.
const PasswordMinLength = 6

// emailPattern treats Unicode space separators, vertical tab and BOM as
// whitespace in addition to RE2's ASCII \s.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ValidateCredentials checks the login/signup form fields.
func ValidateCredentials(email, password string) error {
	errs := apperrors.FieldErrors{}
	switch {
	case strings.TrimSpace(email) == "":
		errs.Add("email", "Email address is required.")
	case !emailPattern.MatchString(email):
		errs.Add("email", "Please enter a valid email format.")
	}
	switch {
	case password == "":
		errs.Add("password", "Password is required.")
	case utf8.RuneCountInString(password) < PasswordMinLength:
		errs.Add("password", "Password must be at least 6 characters long.")
	}
	return errs.Err()
}
