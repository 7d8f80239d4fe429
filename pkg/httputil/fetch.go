package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wordlattice/lattice/pkg/observability"
)

// maxBodySize caps downloaded word lists at 64 MiB. Real word lists are
// a few megabytes at most.
const maxBodySize = 64 << 20

// Fetch downloads the body at url with automatic retry for transient
// failures. Network errors, 5xx responses and 429 rate limits are retried
// with exponential backoff; 4xx responses fail immediately.
//
// HTTP hooks registered via the observability package receive request,
// response and error events for every attempt.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	var body []byte
	err := RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
			return Retryable(err)
		}
		defer resp.Body.Close()
		observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path,
			resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusOK:
			body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
			return err
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return Retryable(fmt.Errorf("GET %s: status %d", url, resp.StatusCode))
		default:
			return fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
