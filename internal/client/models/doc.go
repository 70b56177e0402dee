// Package models holds the wire representations of backend entities.
//
// Entities are owned by the backend. The client only reads them, or creates
// them through API calls, and never mutates fields locally. Nothing here is
// cached between requests.
package models
