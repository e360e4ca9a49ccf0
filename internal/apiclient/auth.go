package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/pkg/errors"
)

func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token == "" || out.User == nil {
		return nil, errors.Unauthorized(fmt.Errorf("upstream returned incomplete auth payload"))
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error) {
	var out model.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token == "" || out.User == nil {
		return nil, errors.Unauthorized(fmt.Errorf("upstream returned incomplete auth payload"))
	}
	return &out, nil
}

// ExchangeOAuthCode swaps an authorization code for a bearer token via
// POST /auth/{provider}/token. Provider is google or facebook, chosen by the
// redirect handler from the callback path.
func (c *Client) ExchangeOAuthCode(ctx context.Context, provider, code, redirectURI string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/"+provider+"/token", "", nil, map[string]string{
		"code":        code,
		"redirectUri": redirectURI,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.Unauthorized(fmt.Errorf("oauth exchange returned no token"))
	}
	return out.Token, nil
}

// GetUser fetches the profile behind a bearer token (GET /auth/user).
func (c *Client) GetUser(ctx context.Context, token string) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/auth/user", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
