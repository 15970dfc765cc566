package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/jkimani/safarihub/internal/models"
)

// UploadProfilePicture sends a profile picture as a multipart form
// under the "file" field. Unlike the JSON operations this builds its
// own body and Content-Type, but response classification is shared
// with the rest of the executor.
func (c *Client) UploadProfilePicture(ctx context.Context, token, filename string, data []byte) (models.UploadResult, error) {
	var out models.UploadResult
	if token == "" {
		return out, ErrAuthRequired
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return out, fmt.Errorf("failed to upload profile picture: build form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return out, fmt.Errorf("failed to upload profile picture: build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return out, fmt.Errorf("failed to upload profile picture: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile/picture", &buf)
	if err != nil {
		return out, fmt.Errorf("failed to upload profile picture: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())

	err = c.roundTrip(ctx, req, "failed to upload profile picture", &out)
	return out, err
}
