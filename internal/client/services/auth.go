// Package services contains application services for the sprintpilot CLI.
// This file defines the authentication service: register, login, logout,
// liveness probe and the credential bookkeeping around them.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/client/models"
	"github.com/dmitrijs2005/sprintpilot/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sprintpilot/internal/client/session"
	"github.com/dmitrijs2005/sprintpilot/internal/common"
	"github.com/dmitrijs2005/sprintpilot/internal/dbx"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create the account, then log in with the same credentials.
//   - Login: authenticate and store the credential; a failed login never
//     writes one.
//   - Logout: erase the credential; calling it again is a no-op.
//   - Ping: check server liveness.
//
// All methods must honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte, fullName string) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
	LoggedIn() bool
	UserName(ctx context.Context) (string, error)
	LoggedInSince(ctx context.Context) (time.Time, error)
	Claims() (session.Claims, error)
}

// authService is the concrete AuthService backed by the API client, the
// shared session and the local SQL database.
type authService struct {
	client  client.Client
	db      *sql.DB
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the given API client,
// DB and session.
func NewAuthService(client client.Client, db *sql.DB, sess *session.Session) AuthService {
	return &authService{client: client, db: db, session: sess}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// Register creates the account and logs in right away.
func (a *authService) Register(ctx context.Context, email string, password []byte, fullName string) (*models.User, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return nil, fmt.Errorf("email and password are required: %w", common.ErrorIncorrectInput)
	}

	u, err := a.client.Register(ctx, models.RegisterRequest{
		Email:    email,
		Password: string(password),
		FullName: strings.TrimSpace(fullName),
	})
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	if err := a.login(ctx, email, string(password)); err != nil {
		return u, err
	}
	return u, nil
}

// Login authenticates against the server and persists the credential
// together with the email it belongs to.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return fmt.Errorf("email and password are required: %w", common.ErrorIncorrectInput)
	}
	return a.login(ctx, email, string(password))
}

func (a *authService) login(ctx context.Context, email, password string) error {
	tok, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("login error: empty access token")
	}

	if err := a.saveCredential(ctx, email, tok.AccessToken); err != nil {
		_ = a.session.Clear(ctx)
		return fmt.Errorf("credential saving error: %w", err)
	}
	return nil
}

// saveCredential writes the email and the token in a single transaction.
func (a *authService) saveCredential(ctx context.Context, email, token string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.UserNameKey, []byte(email)); err != nil {
			return err
		}
		return a.session.SetTx(ctx, repo, token)
	})
}

// Logout erases the credential and the remembered email.
func (a *authService) Logout(ctx context.Context) error {
	return errors.Join(
		a.session.Clear(ctx),
		a.getMetadataRepo().Delete(ctx, common.UserNameKey),
	)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.client.CurrentUser(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) LoggedIn() bool {
	return a.session.HasCredential()
}

// UserName returns the email of the last login, or "" if there is none.
func (a *authService) UserName(ctx context.Context) (string, error) {
	v, err := a.getMetadataRepo().Get(ctx, common.UserNameKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// LoggedInSince reports when the current credential was stored; zero when
// logged out.
func (a *authService) LoggedInSince(ctx context.Context) (time.Time, error) {
	if !a.session.HasCredential() {
		return time.Time{}, nil
	}
	return a.getMetadataRepo().UpdatedAt(ctx, common.AccessTokenKey)
}

func (a *authService) Claims() (session.Claims, error) {
	return a.session.Claims()
}
