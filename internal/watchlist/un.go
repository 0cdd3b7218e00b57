package watchlist

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	pstrings "watchgate/pkg/platform/strings"
)

// UNLoader fetches the UN Security Council consolidated list and extracts
// individual full names, their aliases, and entity names.
type UNLoader struct {
	url    string
	client *http.Client
}

// NewUNLoader builds a loader for the consolidated XML endpoint. A nil
// client falls back to http.DefaultClient.
func NewUNLoader(url string, client *http.Client) *UNLoader {
	if url == "" {
		url = DefaultUNURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &UNLoader{url: url, client: client}
}

func (l *UNLoader) Source() string {
	return SourceUN
}

// consolidatedList mirrors the parts of the UN XML the loader reads.
type consolidatedList struct {
	Individuals []unIndividual `xml:"INDIVIDUALS>INDIVIDUAL"`
	Entities    []unEntity     `xml:"ENTITIES>ENTITY"`
}

type unIndividual struct {
	FirstName  string    `xml:"FIRST_NAME"`
	SecondName string    `xml:"SECOND_NAME"`
	ThirdName  string    `xml:"THIRD_NAME"`
	FourthName string    `xml:"FOURTH_NAME"`
	Aliases    []unAlias `xml:"INDIVIDUAL_ALIAS"`
}

type unAlias struct {
	AliasName string `xml:"ALIAS_NAME"`
}

type unEntity struct {
	Name string `xml:"NAME"`
}

func (l *UNLoader) Load(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build un request: %w", ErrUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch un consolidated list: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: un consolidated list responded %d", ErrUnavailable, resp.StatusCode)
	}

	var list consolidatedList
	if err := xml.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: parse un consolidated list: %w", ErrUnavailable, err)
	}

	return extractUNNames(list), nil
}

func extractUNNames(list consolidatedList) []string {
	var names []string

	for _, ind := range list.Individuals {
		parts := make([]string, 0, 4)
		for _, p := range []string{ind.FirstName, ind.SecondName, ind.ThirdName, ind.FourthName} {
			if t := strings.TrimSpace(p); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			names = append(names, strings.Join(parts, " "))
		}
		for _, alias := range ind.Aliases {
			names = append(names, alias.AliasName)
		}
	}

	for _, ent := range list.Entities {
		names = append(names, ent.Name)
	}

	return pstrings.DedupeAndTrim(names)
}
