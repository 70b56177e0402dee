package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Kind classifies a failure for presentation.
type Kind string

const (
	KindTransport  Kind = "transport"
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindServer     Kind = "server"
	KindProvider   Kind = "provider"
)

// APIError is a response with status >= 400, returned as received.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	// Detail is the backend's "detail" message, or the raw body when the
	// body is not the usual JSON error shape.
	Detail string
	Body   []byte
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is lets errors.Is match status-based sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// Kind reports which class of failure the response belongs to.
func (e *APIError) Kind() Kind {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return KindAuth
	case e.isProvider():
		return KindProvider
	case e.StatusCode >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

var providerNames = []string{"ollama", "groq", "openai", "quota"}

func (e *APIError) isProvider() bool {
	if e.StatusCode == http.StatusPaymentRequired || e.StatusCode == http.StatusServiceUnavailable {
		return true
	}
	d := strings.ToLower(e.Detail)
	for _, name := range providerNames {
		if strings.Contains(d, name) {
			return true
		}
	}
	return false
}

// Remediation returns guidance for provider failures and "" otherwise.
func (e *APIError) Remediation() string {
	if e.Kind() != KindProvider {
		return ""
	}
	d := strings.ToLower(e.Detail)

	switch {
	case e.StatusCode == http.StatusPaymentRequired || strings.Contains(d, "quota"):
		return "Provider quota exceeded. Generate with ollama (free, no tokens) or wait for the quota to reset."
	case e.StatusCode == http.StatusServiceUnavailable || strings.Contains(d, "ollama"):
		return "Ollama is not reachable by the backend. Start it with 'ollama serve' and pull the model with 'ollama pull <model>', or pick another provider."
	default:
		return "The provider rejected the request. Check its API key and model in the backend .env, or generate with ollama."
	}
}

// KindOf classifies any error returned by the client.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind()
	}
	if errors.Is(err, ErrUnavailable) {
		return KindTransport
	}
	return ""
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	return &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Detail:     parseDetail(body),
		Body:       body,
	}
}

// parseDetail understands {"detail": "msg"} and the validation shape
// {"detail": [{"loc": [...], "msg": "..."}]}.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil && len(items) > 0 {
		parts := make([]string, 0, len(items))
		for _, it := range items {
			if loc := joinLoc(it.Loc); loc != "" {
				parts = append(parts, loc+": "+it.Msg)
			} else {
				parts = append(parts, it.Msg)
			}
		}
		return strings.Join(parts, "; ")
	}

	return string(payload.Detail)
}

func joinLoc(loc []any) string {
	parts := make([]string, 0, len(loc))
	for i, l := range loc {
		// the first element names the request part ("body", "query")
		if i == 0 && len(loc) > 1 {
			continue
		}
		parts = append(parts, fmt.Sprint(l))
	}
	return strings.Join(parts, ".")
}
