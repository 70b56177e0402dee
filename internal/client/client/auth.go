package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
)

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login submits the credentials form-encoded, as the backend's OAuth2
// password flow expects. It does not touch the session; storing the returned
// token is up to the caller.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", nil, strings.NewReader(form.Encode()), contentTypeForm)
	if err != nil {
		return nil, err
	}

	var tok models.Token
	if err := c.send(req, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
