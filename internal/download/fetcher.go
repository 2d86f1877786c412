package download

import (
	"context"

	"github.com/handiism/rover/internal/config"
	"github.com/handiism/rover/internal/ctxlog"
	"github.com/handiism/rover/internal/http"
	ioutils "github.com/handiism/rover/internal/io"
	"github.com/handiism/rover/internal/model"
)

// HTTPFetcher downloads datasets over HTTP and writes them to disk.
//
// The whole body is read into memory before the destination file is
// created or truncated, so a failed request never touches the file. A
// failed write may leave a partial file behind.
type HTTPFetcher struct {
	client *http.Client
	dir    string

	// OnProgress, when set, is called as the body of ds arrives. total is
	// -1 if the server did not announce a length.
	OnProgress func(ds model.Dataset, read, total int64)
}

// NewHTTPFetcher creates a fetcher from settings. Files land in
// settings.OutputDir, created on first write, or the current working
// directory when it is empty.
func NewHTTPFetcher(settings *config.Settings) *HTTPFetcher {
	return &HTTPFetcher{
		client: http.NewClient(settings.UserAgent, settings.Timeout()),
		dir:    settings.OutputDir,
	}
}

// Fetch retrieves ds.URL and writes the body to ds.Filename.
//
// Errors are a *NetworkError when the retrieval fails and an *IOError
// when the file cannot be written.
func (f *HTTPFetcher) Fetch(ctx context.Context, ds model.Dataset) error {
	logger := ctxlog.FromContext(ctx)

	var onProgress func(read, total int64)
	if f.OnProgress != nil {
		onProgress = func(read, total int64) {
			f.OnProgress(ds, read, total)
		}
	}

	logger.Debug("requesting dataset", "url", ds.URL)
	body, err := f.client.Get(ctx, ds.URL, onProgress)
	if err != nil {
		return &NetworkError{URL: ds.URL, Err: err}
	}

	if f.dir != "" {
		if err := ioutils.EnsureDir(f.dir); err != nil {
			return &IOError{Path: f.dir, Err: err}
		}
	}

	dest := ioutils.Resolve(f.dir, ds.Filename)
	if err := ioutils.WriteFile(ctx, dest, body); err != nil {
		return &IOError{Path: dest, Err: err}
	}

	logger.Debug("dataset written", "path", dest, "bytes", len(body))
	return nil
}
