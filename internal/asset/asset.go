// Package asset addresses and fetches audio assets.
//
// Reference tracks live under a path convention resolved against a directory
// or an HTTP base URL; recordings live in an in-process Store and are
// addressed by ephemeral mem:// locators that never leave the process.
package asset

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Locator is an opaque reference used to fetch or bind an audio asset.
type Locator string

// MemoryScheme prefixes locators served by a Store.
const MemoryScheme = "mem://"

// Reference returns the locator of the reference pronunciation for a
// language code and sentence index.
func Reference(languageCode string, sentenceIndex int) Locator {
	return Locator(fmt.Sprintf("/audio/speech_%s_%d.mp3", languageCode, sentenceIndex))
}

// IsMemory reports whether the locator points into an in-process Store.
func (l Locator) IsMemory() bool {
	return strings.HasPrefix(string(l), MemoryScheme)
}

func (l Locator) String() string { return string(l) }

var (
	// ErrNotFound is returned for locators that resolve to nothing.
	ErrNotFound = errors.New("asset not found")
	// ErrReleased is returned when releasing a memory asset twice.
	ErrReleased = errors.New("asset already released")
	// ErrStatus marks a transport response that was not a success.
	ErrStatus = errors.New("unexpected transport status")
)

// FetchError reports that the bytes of an asset could not be obtained.
type FetchError struct {
	Locator Locator
	Status  string // transport status when there was a response
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("fetch %s: %s", e.Locator, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Locator, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher returns the raw bytes of an asset.
type Fetcher interface {
	Fetch(ctx context.Context, loc Locator) ([]byte, error)
}

// Router sends memory locators to the Store and everything else to the
// reference fetcher.
type Router struct {
	Memory    *Store
	Reference Fetcher
}

// Fetch implements Fetcher.
func (r *Router) Fetch(ctx context.Context, loc Locator) ([]byte, error) {
	if loc.IsMemory() {
		if r.Memory == nil {
			return nil, &FetchError{Locator: loc, Err: ErrNotFound}
		}
		return r.Memory.Fetch(ctx, loc)
	}
	if r.Reference == nil {
		return nil, &FetchError{Locator: loc, Err: ErrNotFound}
	}
	return r.Reference.Fetch(ctx, loc)
}

// NewReferenceFetcher picks an HTTP or directory fetcher for root.
func NewReferenceFetcher(root string) Fetcher {
	if strings.HasPrefix(root, "http://") || strings.HasPrefix(root, "https://") {
		return NewHTTPFetcher(root)
	}
	return &DirFetcher{Root: root}
}
