// Package cli provides the interactive sprintpilot command-line client.
//
// It wires configuration, the local credential store, the session-aware API
// client and its services, and an interactive REPL. Typical flow: restore
// the stored credential, start a background connectivity watcher, and
// execute user commands until "exit".
//
// Key features:
//   - Register / Login / Logout / whoami
//   - Projects: list, show, create, upload a spec, generate a plan
//   - Plan: tree view or YAML dump of epics, stories and tasks
//   - Sprints: list, show, create
//   - Export: PDF, CSV or JIRA CSV to a directory or an S3 bucket
//
// Commands that fail with 401 print a "session expired" banner; the client
// has already erased the credential by then, so the next step is "login".
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
