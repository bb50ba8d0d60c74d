package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// PresignResult is the two-URL pair of a presigned upload: the temporary
// authorized target and the final public location
type PresignResult struct {
	PresignedURL string `json:"presignedUrl"`
	PublicURL    string `json:"publicUrl"`
}

// PresignUpload requests a presigned storage URL for one object
func (c *Client) PresignUpload(ctx context.Context, fileName, contentType string) (*PresignResult, error) {
	body := map[string]string{
		"fileName":    fileName,
		"contentType": contentType,
	}

	var result PresignResult
	if err := c.do(ctx, http.MethodPost, "/api/uploads/presign", nil, body, &result); err != nil {
		return nil, err
	}
	if result.PresignedURL == "" {
		return nil, fmt.Errorf("presign response for %q carried no URL", fileName)
	}
	return &result, nil
}

// PutObject uploads the object bytes directly to the presigned URL.
// Failures report the HTTP status and response body text so the submit
// path can abort with a descriptive error before any entity mutation.
func (c *Client) PutObject(ctx context.Context, presignedURL, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("error building storage request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.ContentLength = int64(len(data))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("error uploading to storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("storage PUT returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}
