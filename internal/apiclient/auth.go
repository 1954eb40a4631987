package apiclient

import (
	"context"
	"net/http"
)

// AuthAPI wraps the authentication endpoints.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Register creates an account and returns the issued token.
func (a *AuthAPI) Register(ctx context.Context, name, email, password string) (string, error) {
	var out tokenResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/register", credentialsRequest{Name: name, Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Login authenticates and returns the issued token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := a.client.do(ctx, http.MethodPost, "/auth/login", credentialsRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
