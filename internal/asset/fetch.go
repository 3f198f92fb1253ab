package asset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DirFetcher reads reference assets from a directory tree. The locator path
// is resolved relative to Root.
type DirFetcher struct {
	Root string
}

// Fetch implements Fetcher.
func (f *DirFetcher) Fetch(ctx context.Context, loc Locator) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Locator: loc, Err: err}
	}

	rel := filepath.FromSlash(strings.TrimPrefix(string(loc), "/"))
	if rel == "" || strings.HasPrefix(filepath.Clean(rel), "..") {
		return nil, &FetchError{Locator: loc, Err: ErrNotFound}
	}

	data, err := os.ReadFile(filepath.Join(f.Root, rel))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = ErrNotFound
		}
		return nil, &FetchError{Locator: loc, Err: err}
	}
	return data, nil
}

// HTTPFetcher downloads reference assets relative to a base URL.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher for baseURL.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(30 * time.Second)
	return &HTTPFetcher{client: client}
}

// Fetch implements Fetcher. Any non-2xx response is a FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, loc Locator) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(string(loc))
	if err != nil {
		return nil, &FetchError{Locator: loc, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FetchError{Locator: loc, Status: resp.Status(), Err: ErrStatus}
	}
	return resp.Body(), nil
}
