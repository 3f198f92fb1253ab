package asset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceLocator(t *testing.T) {
	assert.Equal(t, Locator("/audio/speech_en_0.mp3"), Reference("en", 0))
	assert.Equal(t, Locator("/audio/speech_zh_9.mp3"), Reference("zh", 9))
	assert.False(t, Reference("fr", 3).IsMemory())
}

func TestStorePutFetchRelease(t *testing.T) {
	s := NewStore()
	loc := s.Put([]byte("RIFF"))

	assert.True(t, loc.IsMemory())
	assert.Equal(t, 1, s.Len())

	data, err := s.Fetch(context.Background(), loc)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)

	require.NoError(t, s.Release(loc))
	assert.Equal(t, 0, s.Len())
	assert.ErrorIs(t, s.Release(loc), ErrReleased)

	_, err = s.Fetch(context.Background(), loc)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreLocatorsAreUnique(t *testing.T) {
	s := NewStore()
	a := s.Put(nil)
	b := s.Put(nil)
	assert.NotEqual(t, a, b)
}

func TestDirFetcher(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "audio"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "audio", "speech_en_0.mp3"), []byte("ID3"), 0o644))

	f := &DirFetcher{Root: root}

	data, err := f.Fetch(context.Background(), Reference("en", 0))
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3"), data)

	_, err = f.Fetch(context.Background(), Reference("en", 1))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.Fetch(context.Background(), Locator("/../secret"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirFetcherHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&DirFetcher{Root: t.TempDir()}).Fetch(ctx, Reference("en", 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/audio/speech_es_2.mp3" {
			_, _ = w.Write([]byte("mp3-bytes"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewReferenceFetcher(srv.URL + "/")
	require.IsType(t, &HTTPFetcher{}, f)

	data, err := f.Fetch(context.Background(), Reference("es", 2))
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), data)

	_, err = f.Fetch(context.Background(), Reference("es", 3))
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, ErrStatus)
	assert.True(t, strings.HasPrefix(fe.Status, "404"))
}

func TestRouter(t *testing.T) {
	store := NewStore()
	rec := store.Put([]byte("recorded"))

	r := &Router{Memory: store, Reference: fetcherFunc(func(ctx context.Context, loc Locator) ([]byte, error) {
		return []byte("reference"), nil
	})}

	data, err := r.Fetch(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "recorded", string(data))

	data, err = r.Fetch(context.Background(), Reference("hi", 4))
	require.NoError(t, err)
	assert.Equal(t, "reference", string(data))

	_, err = (&Router{}).Fetch(context.Background(), Reference("hi", 4))
	assert.True(t, errors.Is(err, ErrNotFound))
}

type fetcherFunc func(ctx context.Context, loc Locator) ([]byte, error)

func (f fetcherFunc) Fetch(ctx context.Context, loc Locator) ([]byte, error) { return f(ctx, loc) }
