// Package fetcher retrieves the version currently published by the update server.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/eopatcher/eopatcher/internal/appversion"
	"github.com/eopatcher/eopatcher/version"
)

const (
	userAgent      = "eopatcher/%s"
	maxTokenLength = 100
	defaultTimeout = 30 * time.Second
)

// FetchError describes why the remote version could not be obtained
type FetchError struct {
	Cause string
	Err   error
}

func (e *FetchError) Error() string {
	return e.Cause
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Result holds either a Version or a FetchError, never both
type Result struct {
	version appversion.Version
	err     *FetchError
}

// Success builds a successful Result
func Success(v appversion.Version) Result {
	return Result{version: v}
}

// Failure builds a failed Result
func Failure(cause string, err error) Result {
	return Result{err: &FetchError{Cause: cause, Err: err}}
}

// Failed reports whether the fetch failed
func (r Result) Failed() bool {
	return r.err != nil
}

// Version returns the fetched version. It is Unknown when the fetch failed.
func (r Result) Version() appversion.Version {
	return r.version
}

// Err returns the failure or nil
func (r Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// HTTPFetcher reads a plain text version token from a URL
type HTTPFetcher struct {
	url    string
	client *http.Client
}

// NewHTTPFetcher creates a fetcher for the given URL. A nil client uses a client with a default timeout.
func NewHTTPFetcher(url string, client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPFetcher{
		url:    url,
		client: client,
	}
}

// Get performs a single request. Every failure is reported through the Result.
func (f *HTTPFetcher) Get(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Failure(fmt.Sprintf("invalid version URL %q: %v", f.url, err), err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf(userAgent, version.PatcherVersion()))

	resp, err := f.client.Do(req)
	if err != nil {
		return Failure(fmt.Sprintf("failed to fetch version info: %v", err), err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warnf("error closing response body: %v", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return Failure(fmt.Sprintf("version server returned status %d", resp.StatusCode), nil)
	}

	if resp.ContentLength > maxTokenLength {
		return Failure(fmt.Sprintf("version response too large: %d bytes", resp.ContentLength), nil)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenLength+1))
	if err != nil {
		return Failure(fmt.Sprintf("failed to read version info: %v", err), err)
	}
	if len(content) > maxTokenLength {
		return Failure(fmt.Sprintf("version response exceeds %d bytes", maxTokenLength), nil)
	}

	v, err := appversion.Parse(string(content))
	if err != nil {
		return Failure(fmt.Sprintf("malformed version from server: %v", err), err)
	}

	log.Debugf("remote version is %s", v)
	return Success(v)
}
