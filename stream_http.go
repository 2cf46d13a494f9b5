package cwrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPParseRequest configures HTTPParse.
type HTTPParseRequest struct {
	URL     string
	Client  *http.Client
	Sink    Sink
	Options []Option
}

// HTTPParse fetches text over HTTP(S) and itemizes it into Sink.
func HTTPParse(ctx context.Context, req HTTPParseRequest) error {
	if req.Sink == nil {
		return fmt.Errorf("stream http: sink is nil")
	}
	body, err := OpenURL(ctx, req.Client, req.URL)
	if err != nil {
		return err
	}
	defer body.Close()
	return Parse(ParseRequest{
		Reader:  body,
		Sink:    req.Sink,
		Options: req.Options,
	})
}

// OpenURL issues a GET for an http or https URL and returns the response body
// when the status is 2xx. A nil client uses http.DefaultClient.
func OpenURL(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	if url == "" {
		return nil, fmt.Errorf("stream http: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("stream http: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("stream http: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stream http: request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("stream http: status %s", resp.Status)
	}
	return resp.Body, nil
}
