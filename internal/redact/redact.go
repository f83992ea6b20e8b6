// Package redact provides utilities for scrubbing sensitive information from
// strings before they are logged. User email addresses are personal data and
// must never end up verbatim in log output; the same goes for anything that
// looks like a credential.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	credentialRegex = regexp.MustCompile(`(?i)(password|passwd|pwd|token|secret|api[_-]?key)([=:\s]['"]?)\S+`)
)

// String returns s with email addresses and credential-looking fragments
// replaced by placeholders.
func String(s string) string {
	s = credentialRegex.ReplaceAllString(s, "$1$2"+CredentialPlaceholder)
	s = emailRegex.ReplaceAllString(s, EmailPlaceholder)
	return s
}

// Error returns the redacted message of err, or an empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
