package media

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliate_bot/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newCache(t *testing.T, maxBytes int64) *Cache {
	t.Helper()
	c, err := New(Config{
		Dir:      filepath.Join(t.TempDir(), "images"),
		MaxBytes: maxBytes,
		Timeout:  5 * time.Second,
	}, testLogger())
	require.NoError(t, err)
	return c
}

func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/a.PNG", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/photo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		_, _ = w.Write([]byte("webp-bytes"))
	})
	mux.HandleFunc("/big.jpg", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	})
	mux.HandleFunc("/missing.jpg", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func readRef(t *testing.T, c *Cache, ref domain.MediaRef) string {
	t.Helper()
	rc, err := c.Open(ref)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestDownload_StoresFilesInOrder(t *testing.T) {
	srv := imageServer(t)
	c := newCache(t, 1024)

	refs, err := c.Download(context.Background(), []string{srv.URL + "/a.PNG", srv.URL + "/photo"})
	require.NoError(t, err)
	require.Len(t, refs, 2)

	assert.True(t, refs[0].IsLocal())
	assert.Equal(t, ".png", filepath.Ext(refs[0].Ref))
	assert.Equal(t, ".webp", filepath.Ext(refs[1].Ref))
	assert.Equal(t, c.Dir(), filepath.Dir(refs[0].Ref))

	assert.Equal(t, "png-bytes", readRef(t, c, refs[0]))
	assert.Equal(t, "webp-bytes", readRef(t, c, refs[1]))
}

func TestDownload_PartialFailure(t *testing.T) {
	srv := imageServer(t)
	c := newCache(t, 1024)

	refs, err := c.Download(context.Background(), []string{
		srv.URL + "/missing.jpg",
		srv.URL + "/a.PNG",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.jpg")
	assert.Contains(t, err.Error(), "404")
	require.Len(t, refs, 1)
	assert.Equal(t, "png-bytes", readRef(t, c, refs[0]))
}

func TestDownload_SizeLimit(t *testing.T) {
	srv := imageServer(t)
	c := newCache(t, 16)

	refs, err := c.Download(context.Background(), []string{srv.URL + "/big.jpg"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, refs)

	entries, err := os.ReadDir(c.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownload_CancelledContext(t *testing.T) {
	srv := imageServer(t)
	c := newCache(t, 1024)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	refs, err := c.Download(ctx, []string{srv.URL + "/a.PNG"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, refs)
}

func TestOpen_RejectsRemote(t *testing.T) {
	c := newCache(t, 0)

	_, err := c.Open(domain.RemoteMedia("AgACAgQAAxkBAAI"))
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path        string
		contentType string
		want        string
	}{
		{"/x/photo.JPEG", "", ".jpg"},
		{"/x/photo.gif", "image/png", ".gif"},
		{"/x/photo", "image/png; charset=binary", ".png"},
		{"/x/photo.exe", "application/octet-stream", ".jpg"},
		{"/x/photo", "", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.path+tt.contentType, func(t *testing.T) {
			u, err := url.Parse("https://cdn.example" + tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, extension(u, tt.contentType))
		})
	}
}

func TestPrune(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	write := func(name string, age time.Duration) {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
		mt := now.Add(-age)
		require.NoError(t, os.Chtimes(p, mt, mt))
	}
	write("old.jpg", 48*time.Hour)
	write("fresh.jpg", time.Hour)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	p := NewPrune(dir, 24*time.Hour, testLogger())
	p.now = func() time.Time { return now }

	require.NoError(t, p.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "old.jpg"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "fresh.jpg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "nested"))
	assert.NoError(t, err)
	assert.Equal(t, "media_prune", p.Name())
}

func TestPrune_MissingDir(t *testing.T) {
	p := NewPrune(filepath.Join(t.TempDir(), "absent"), time.Hour, testLogger())
	assert.Error(t, p.Run(context.Background()))
}
