// Package downloader fetches patch archives over HTTP.
package downloader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/eopatcher/eopatcher/internal/appversion"
	"github.com/eopatcher/eopatcher/version"
)

const (
	userAgent = "eopatcher/%s"

	// DefaultRetries is the number of additional attempts after a failed download
	DefaultRetries = 2
	// DefaultRetryDelay is the initial delay between download attempts
	DefaultRetryDelay = 3 * time.Second
)

// HTTPSource downloads the archive for a target version from a URL template
type HTTPSource struct {
	urlTemplate string
	client      *http.Client
	retries     uint64
	retryDelay  time.Duration
	checksum    string
}

// Option configures an HTTPSource
type Option func(*HTTPSource)

// WithClient replaces the default HTTP client
func WithClient(client *http.Client) Option {
	return func(s *HTTPSource) {
		s.client = client
	}
}

// WithRetry sets the number of retries and the initial delay between them. Zero retries disables retrying.
func WithRetry(retries uint64, delay time.Duration) Option {
	return func(s *HTTPSource) {
		s.retries = retries
		s.retryDelay = delay
	}
}

// WithSHA256 makes the download fail unless the archive matches the hex encoded digest
func WithSHA256(checksum string) Option {
	return func(s *HTTPSource) {
		s.checksum = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(checksum)), "sha256:")
	}
}

// NewHTTPSource creates a source. The template may contain %version, %os and %arch.
func NewHTTPSource(urlTemplate string, opts ...Option) *HTTPSource {
	s := &HTTPSource{
		urlTemplate: urlTemplate,
		client:      http.DefaultClient,
		retries:     DefaultRetries,
		retryDelay:  DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch downloads the archive for target into dstFile
func (s *HTTPSource) Fetch(ctx context.Context, target appversion.Version, dstFile string) error {
	url := version.ArchiveURL(s.urlTemplate, target.String())
	if err := DownloadToFile(ctx, s.client, s.newBackOff(ctx), url, dstFile); err != nil {
		return err
	}

	if s.checksum == "" {
		return nil
	}
	if err := VerifySHA256(dstFile, s.checksum); err != nil {
		return fmt.Errorf("verify archive: %w", err)
	}
	return nil
}

func (s *HTTPSource) newBackOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = s.retryDelay
	eb.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(eb, s.retries), ctx)
}

// DownloadToFile downloads url into dstFile, retrying according to b.
// Client errors (4xx) are not retried.
func DownloadToFile(ctx context.Context, client *http.Client, b backoff.BackOff, url, dstFile string) error {
	log.Debugf("starting download from %s", url)

	attempt := 0
	operation := func() error {
		attempt++
		err := downloadToFileOnce(ctx, client, url, dstFile)
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		log.Warnf("download attempt %d failed, retrying after %v: %v", attempt, delay, err)
	}

	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}

	log.Infof("successfully downloaded %s to %s", url, dstFile)
	return nil
}

func downloadToFileOnce(ctx context.Context, client *http.Client, url, dstFile string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create HTTP request: %w", err))
	}
	req.Header.Set("User-Agent", fmt.Sprintf(userAgent, version.PatcherVersion()))

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warnf("error closing response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("unexpected HTTP status: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return backoff.Permanent(statusErr)
		}
		return statusErr
	}

	out, err := os.Create(dstFile)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create destination file %q: %w", dstFile, err))
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			log.Warnf("error closing file %q: %v", dstFile, cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response body to file: %w", err)
	}

	return nil
}

// VerifySHA256 compares the SHA-256 digest of path with the hex encoded expected value
func VerifySHA256(path, expected string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if actual != expected {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expected, actual)
	}
	return nil
}
