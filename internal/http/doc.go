// Package http provides the HTTP client rover retrieves datasets with.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Whole-body GET requests with progress tracking
//   - Optional request timeouts
//
// # Basic Usage
//
//	client := http.NewClient("rover", 0)
//	body, err := client.Get(ctx, "https://example.org/iris.csv", nil)
//
// Responses outside the 2xx range are reported as *StatusError.
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   &buf,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
