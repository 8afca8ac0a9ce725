package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"net/http"

	"github.com/dixieflatline76/wallhavener/util/log"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Fetcher downloads full-size images.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a Fetcher using client for all downloads.
func NewFetcher(client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client}
}

// Fetch downloads url into memory. The body must decode as an image.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &RequestError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrNotImage, err)}
	}
	log.Debugf("Downloaded %s (%s, %dx%d, %d bytes)", url, format, cfg.Width, cfg.Height, len(data))
	return data, nil
}
