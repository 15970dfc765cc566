package api

import (
	"context"
	"net/http"

	"github.com/jkimani/safarihub/internal/models"
)

// Login exchanges credentials for a bearer token and the user record.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	var out models.AuthResult
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     creds,
		fallback: "failed to log in",
	}, &out)
	return out, err
}

// Register creates an account. It does not return a token; the caller
// is expected to follow up with Login using the same email/password.
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/auth/register",
		body:     reg,
		fallback: "failed to register",
	}, nil)
}
