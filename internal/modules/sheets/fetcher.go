// README: Sheet fetcher; local cache first, network fallback with persistence.
package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client fetches the raw rate grid for one location identifier. The local
// persisted copy is consulted before any network call; a network result is
// persisted locally for the next run.
type Client struct {
	httpc       *http.Client
	urlTemplate string
	cache       *FileCache
}

func NewClient(urlTemplate string, cache *FileCache) *Client {
	return &Client{
		httpc:       &http.Client{Timeout: 30 * time.Second},
		urlTemplate: urlTemplate,
		cache:       cache,
	}
}

// FetchTable returns the grid for id. With bypassLocal set the local copy is
// ignored and the sheet is re-downloaded (forced refresh).
func (c *Client) FetchTable(ctx context.Context, id string, bypassLocal bool) (RawTable, error) {
	if !bypassLocal {
		if data, ok := c.cache.Load(id); ok {
			return decodeGrid(data)
		}
	}

	data, err := c.download(ctx, id)
	if err != nil {
		// A forced refresh can still fall back to the last good copy.
		if bypassLocal {
			if cached, ok := c.cache.Load(id); ok {
				log.Printf("sheets: download %s failed (%v); using local copy", id, err)
				return decodeGrid(cached)
			}
		}
		return nil, err
	}

	if err := c.cache.Store(id, data); err != nil {
		log.Printf("sheets: persist %s failed: %v", id, err)
	}
	return decodeGrid(data)
}

func (c *Client) download(ctx context.Context, id string) ([]byte, error) {
	url := fmt.Sprintf(c.urlTemplate, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", id, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("fetch %s: empty body", id)
	}
	return data, nil
}

// decodeGrid parses delimited text into a grid. Published sheets are ragged
// and sloppily quoted, so both are tolerated.
func decodeGrid(data []byte) (RawTable, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode grid: %w", err)
	}
	return RawTable(rows), nil
}
