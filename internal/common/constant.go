// Package common contains shared constants and sentinel errors used across
// sprintpilot components.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the credential in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	// AccessTokenKey is the metadata key the credential is persisted under.
	AccessTokenKey = "access_token"

	// UserNameKey is the metadata key of the last logged-in email.
	UserNameKey = "username"

	// DefaultProvider is the generation engine the backend falls back to.
	DefaultProvider = "ollama"
)
