package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// bordered box for provider remediation
	hintStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1)
)

func (a *App) success(msg string) {
	fmt.Fprintln(a.out, successStyle.Render(msg))
}

// report prints err for the user. The REPL calls it after every command.
func (a *App) report(err error) {
	if err == nil {
		return
	}
	a.logger().Debug(context.Background(), "command failed", "error", err)
	fmt.Fprintln(a.out, renderError(err))

	if errors.Is(err, client.ErrUnauthorized) {
		// the client has already erased the credential
		a.setUserName("")
	}
}

// renderError turns a command error into the text shown to the user.
func renderError(err error) string {
	switch {
	case errors.Is(err, common.ErrorNotLoggedIn):
		return warningStyle.Render("Please login first (type 'login' or 'register').")

	case errors.Is(err, common.ErrorIncorrectInput):
		return warningStyle.Render("Invalid input: ") + err.Error()

	case errors.Is(err, client.ErrUnavailable):
		return errorStyle.Render("Server unavailable.") + " " +
			dimStyle.Render("Check that the backend is running and SPRINTPILOT_API_URL points at it.")
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return errorStyle.Render("Error: ") + err.Error()
	}

	switch apiErr.Kind() {
	case client.KindAuth:
		if apiErr.Path == "/api/v1/auth/login" {
			return errorStyle.Render("Login failed: ") + detailOr(apiErr, "incorrect email or password")
		}
		return warningStyle.Render("Session expired, please login again.")

	case client.KindProvider:
		var b strings.Builder
		b.WriteString(errorStyle.Render("LLM provider error: "))
		b.WriteString(detailOr(apiErr, "generation failed"))
		if hint := apiErr.Remediation(); hint != "" {
			b.WriteString("\n")
			b.WriteString(hintStyle.Render(hint))
		}
		return b.String()

	case client.KindServer:
		return errorStyle.Render(fmt.Sprintf("Server error (%d): ", apiErr.StatusCode)) + detailOr(apiErr, "no details")

	default:
		return errorStyle.Render("Error: ") + detailOr(apiErr, err.Error())
	}
}

func detailOr(e *client.APIError, fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}
