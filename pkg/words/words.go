// Package words loads word lists from readers, files, and URLs.
//
// A word list is plain text with one word per line. Lines are trimmed of
// surrounding whitespace; blank lines and lines starting with '#' are
// skipped. No validation beyond that happens here: filtering of invalid
// words is the build pipeline's job, so a single bad line doesn't reject
// an otherwise usable list.
package words

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wordlattice/lattice/pkg/errors"
	"github.com/wordlattice/lattice/pkg/httputil"
	"github.com/wordlattice/lattice/pkg/observability"
)

// maxLineSize bounds scanner buffers. Word lists with longer lines are
// not word lists.
const maxLineSize = 1 << 20

// Read reads a word list from r, one word per line.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to read word list")
	}
	return words, nil
}

// LoadFile reads a word list from a file on disk.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "word list %s does not exist", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Fetch downloads a word list from a URL, using cache for repeated
// fetches. Pass a nil cache to always download.
func Fetch(ctx context.Context, url string, cache *httputil.Cache) ([]string, error) {
	start := time.Now()
	observability.Build().OnLoadStart(ctx, url)

	body, err := fetchBody(ctx, url, cache)
	if err != nil {
		observability.Build().OnLoadComplete(ctx, url, 0, time.Since(start), err)
		return nil, err
	}

	words, err := Read(bytes.NewReader(body))
	observability.Build().OnLoadComplete(ctx, url, len(words), time.Since(start), err)
	return words, err
}

func fetchBody(ctx context.Context, url string, cache *httputil.Cache) ([]byte, error) {
	if cache != nil {
		var cached []byte
		if ok, err := cache.Get(url, &cached); ok && err == nil {
			return cached, nil
		}
	}

	body, err := httputil.Fetch(ctx, http.DefaultClient, url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "fetch of %s cancelled", url)
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to fetch %s", url)
	}

	if cache != nil {
		_ = cache.Set(url, body)
	}
	return body, nil
}
