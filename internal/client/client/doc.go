// Package client is the session-aware HTTP client of the sprint-planning
// backend.
//
// # Overview
//
// The package provides:
//  1. An API contract (see the Client interface) covering auth, projects,
//     the generated work breakdown, exports and sprints.
//  2. A concrete REST implementation (see HTTPClient). Every call goes
//     through newRequest, which attaches the session credential as a bearer
//     header, and do, which erases the credential when the backend rejects
//     it with status 401. Both steps are plain method calls so the
//     credential handling is visible at every call site.
//
// # Error Handling
//
// Responses with status >= 400 come back as *APIError carrying the status
// and the backend's detail message. Common conditions can be matched with
// errors.Is: ErrUnauthorized, ErrNotFound, ErrUnavailable (no response at
// all). Nothing is retried.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context; the client itself sets no deadlines.
package client
