package downloader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eopatcher/eopatcher/internal/appversion"
)

func TestHTTPSource_Fetch(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		_, _ = w.Write([]byte("archive-bytes"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "patch.zip")
	src := NewHTTPSource(server.URL + "/patch-%version.zip")

	require.NoError(t, src.Fetch(context.Background(), appversion.MustParse("1.1.0"), dst))
	assert.Equal(t, "/patch-1.1.0.zip", requested)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "archive-bytes", string(content))
}

func TestHTTPSource_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("third time lucky"))
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "patch.zip")
	src := NewHTTPSource(server.URL, WithRetry(3, time.Millisecond))

	require.NoError(t, src.Fetch(context.Background(), appversion.MustParse("1.0"), dst))
	assert.Equal(t, int32(3), calls.Load())

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "third time lucky", string(content))
}

func TestHTTPSource_DoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL, WithRetry(3, time.Millisecond))
	err := src.Fetch(context.Background(), appversion.MustParse("1.0"), filepath.Join(t.TempDir(), "patch.zip"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPSource_GivesUp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	src := NewHTTPSource(server.URL, WithRetry(1, time.Millisecond))
	err := src.Fetch(context.Background(), appversion.MustParse("1.0"), filepath.Join(t.TempDir(), "patch.zip"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPSource_Checksum(t *testing.T) {
	payload := []byte("signed archive")
	sum := sha256.Sum256(payload)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	dst := filepath.Join(t.TempDir(), "patch.zip")

	ok := NewHTTPSource(server.URL, WithSHA256("SHA256:"+hex.EncodeToString(sum[:])))
	require.NoError(t, ok.Fetch(context.Background(), appversion.MustParse("1.0"), dst))

	bad := NewHTTPSource(server.URL, WithSHA256(hex.EncodeToString(make([]byte, 32))))
	err := bad.Fetch(context.Background(), appversion.MustParse("1.0"), dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestHTTPSource_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewHTTPSource(server.URL, WithRetry(5, time.Second))
	err := src.Fetch(ctx, appversion.MustParse("1.0"), filepath.Join(t.TempDir(), "patch.zip"))
	assert.ErrorIs(t, err, context.Canceled)
}
