package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"attendctl/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	Employee session.Identity `json:"employee"`
}

// Login exchanges credentials for a bearer token and the caller's identity.
// It is the only endpoint that does not require an authenticated client.
func (c *Client) Login(ctx context.Context, email, password string) (string, session.Identity, error) {
	data, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", session.Identity{}, fmt.Errorf("encoding login request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/auth/login", nil), bytes.NewReader(data))
	if err != nil {
		return "", session.Identity{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out loginResponse
	if err := c.do(req, &out); err != nil {
		return "", session.Identity{}, err
	}
	return out.Token, out.Employee, nil
}
