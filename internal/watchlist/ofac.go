package watchlist

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"

	pstrings "watchgate/pkg/platform/strings"
)

// OFACLoader fetches the OFAC Specially Designated Nationals list and
// extracts the name column.
type OFACLoader struct {
	url    string
	client *http.Client
}

// NewOFACLoader builds a loader for the given SDN CSV endpoint. A nil
// client falls back to http.DefaultClient.
func NewOFACLoader(url string, client *http.Client) *OFACLoader {
	if url == "" {
		url = DefaultOFACURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OFACLoader{url: url, client: client}
}

func (l *OFACLoader) Source() string {
	return SourceOFAC
}

func (l *OFACLoader) Load(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build ofac request: %w", ErrUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch ofac sdn: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ofac sdn responded %d", ErrUnavailable, resp.StatusCode)
	}

	names, err := extractSDNNames(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return names, nil
}

// extractSDNNames streams the CSV, detecting the file shape from the
// first record via the known schema adapters.
func extractSDNNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ofac sdn file is empty")
		}
		return nil, fmt.Errorf("parse ofac sdn: %w", err)
	}

	col := -1
	var names []string
	for _, schema := range sdnSchemas {
		c, skipFirst, ok := schema.Detect(first)
		if !ok {
			continue
		}
		col = c
		if !skipFirst && col < len(first) {
			names = append(names, first[col])
		}
		break
	}
	if col < 0 {
		return nil, fmt.Errorf("ofac sdn name column not found in %v", first)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse ofac sdn: %w", err)
		}
		if col < len(record) {
			names = append(names, record[col])
		}
	}

	return pstrings.DedupeAndTrim(names), nil
}
