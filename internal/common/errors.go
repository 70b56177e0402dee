package common

import "errors"

var (
	// ErrorNotFound is returned by repositories when a key or row is absent.
	ErrorNotFound = errors.New("not found")

	// ErrorIncorrectInput marks user input rejected before any request is sent.
	ErrorIncorrectInput = errors.New("incorrect input")

	// ErrorNotLoggedIn is returned by CLI commands that need a credential.
	ErrorNotLoggedIn = errors.New("not logged in")
)
