package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrSheetNotConfigured means no sheet URL was provided. It fails the
// refresh cycle that hits it but is not fatal for the process.
var ErrSheetNotConfigured = errors.New("sheet url is not configured")

// HTTPError is a non-2xx response from the sheet host.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sheet fetch returned status %d", e.Status)
}

// SheetClient downloads the published CSV export of the tracking sheet.
type SheetClient struct {
	url    string
	client *http.Client
}

func NewSheetClient(url string) *SheetClient {
	return &SheetClient{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch downloads the current sheet export. The no-cache header asks
// intermediaries for the live export rather than a cached copy, since the
// publisher republishes continuously.
func (c *SheetClient) Fetch(ctx context.Context) (string, error) {
	if strings.TrimSpace(c.url) == "" {
		return "", ErrSheetNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
