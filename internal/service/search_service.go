package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/trailnepal/marketplace/pkg/searchapi"
)

type SearchCategory string

const (
	SearchGeneral      SearchCategory = "general"
	SearchDestinations SearchCategory = "destinations"
	SearchGuides       SearchCategory = "guides"
	SearchLatest       SearchCategory = "latest"
)

const (
	defaultSearchCount = 10
	maxSearchCount     = 20
)

// SearchClient is what the service needs from the provider client.
type SearchClient interface {
	WebSearch(ctx context.Context, p searchapi.Params) (json.RawMessage, error)
}

type SearchService interface {
	Search(ctx context.Context, query string, category SearchCategory, count, offset int) (json.RawMessage, error)
}

type searchService struct {
	client SearchClient
}

func NewSearchService(client SearchClient) SearchService {
	return &searchService{client: client}
}

// augmentQuery biases free-text queries toward the marketplace domain and
// returns the provider freshness restriction for the category.
func augmentQuery(query string, category SearchCategory) (string, string) {
	q := strings.TrimSpace(query)
	if !strings.Contains(strings.ToLower(q), "nepal") {
		q += " Nepal"
	}

	freshness := ""
	switch category {
	case SearchDestinations:
		q += " destinations tourism travel"
	case SearchGuides:
		q += " tour guide trekking"
	case SearchLatest:
		freshness = "pm"
	}
	return q, freshness
}

func (s *searchService) Search(ctx context.Context, query string, category SearchCategory, count, offset int) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Fields: map[string]string{"q": "query is required"}}
	}
	if count <= 0 {
		count = defaultSearchCount
	}
	if count > maxSearchCount {
		count = maxSearchCount
	}
	if offset < 0 {
		offset = 0
	}

	q, freshness := augmentQuery(query, category)
	payload, err := s.client.WebSearch(ctx, searchapi.Params{
		Query:     q,
		Count:     count,
		Offset:    offset,
		Freshness: freshness,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return payload, nil
}
