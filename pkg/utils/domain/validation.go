package domain

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

var (
	ErrEmptyName   = errors.New("domain name is empty")
	ErrInvalidName = errors.New("invalid domain name")
)

// Labels of letters, digits and hyphens (no leading or trailing hyphen, at most
// 63 characters) followed by an alphabetic top-level label.
var namePattern = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)

// ValidateName checks the syntax of a domain name as typed by a user.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Canonicalize turns user input into the ASCII host name sent upstream. A pasted
// URL is reduced to its host.
func Canonicalize(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ErrEmptyName
	}

	if strings.Contains(name, "://") {
		u, err := url.Parse(name)
		if err != nil || u.Hostname() == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, input)
		}
		name = u.Hostname()
	}

	name = strings.TrimSuffix(strings.ToLower(name), ".")

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	return ascii, nil
}

// RegistrableDomain returns the effective TLD plus one label, e.g.
// "www.example.co.uk" -> "example.co.uk".
func RegistrableDomain(name string) (string, error) {
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return apex, nil
}
