package validator

import (
	"fmt"
	"regexp"
)

const (
	maxEmailLength    = 255
	maxPasswordLength = 128
	maxFileNameLen    = 255

	errEmailMissingFmt      = "Missing email"
	errEmailLengthFmt       = "email must not exceed %d characters"
	errEmailInvalidFmt      = "invalid email format"
	errPasswordMissingFmt   = "Missing password"
	errPasswordMaxLengthFmt = "password must not exceed %d characters"
	errFileNameMissingFmt   = "Missing name"
	errFileNameMaxLengthFmt = "file name must not exceed %d characters"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func Email(email string) error {
	if email == "" {
		return fmt.Errorf(errEmailMissingFmt)
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf(errEmailLengthFmt, maxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf(errEmailInvalidFmt)
	}
	return nil
}

func Password(password string) error {
	if password == "" {
		return fmt.Errorf(errPasswordMissingFmt)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf(errPasswordMaxLengthFmt, maxPasswordLength)
	}
	return nil
}

func FileName(name string) error {
	if name == "" {
		return fmt.Errorf(errFileNameMissingFmt)
	}
	if len(name) > maxFileNameLen {
		return fmt.Errorf(errFileNameMaxLengthFmt, maxFileNameLen)
	}
	return nil
}
