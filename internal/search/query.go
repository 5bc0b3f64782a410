package search

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// SearchParams configures a catalog search.
type SearchParams struct {
	Query string // User's search query

	// Filters. Facet terms are matched lowercase.
	Materials []string
	Colors    []string
	RoomTypes []string
	Keywords  []string
	MinPrice  float64
	MaxPrice  float64

	// Pagination
	Limit  int
	Offset int

	// Sorting
	SortBy    string // "relevance", "name", "price"
	SortOrder string // "asc", "desc"

	// Options
	IncludeFacets bool
	Highlight     bool
}

// DefaultSearchParams returns sensible defaults.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		Limit:         20,
		Offset:        0,
		SortBy:        "relevance",
		SortOrder:     "desc",
		IncludeFacets: true,
		Highlight:     true,
	}
}

// SearchResult represents the search results.
type SearchResult struct {
	Query  string       `json:"query"`
	Total  uint64       `json:"total"`
	TookMs int64        `json:"took_ms"`
	Hits   []SearchHit  `json:"hits"`
	Facets SearchFacets `json:"facets,omitzero"`
}

// SearchHit represents a single search result.
type SearchHit struct {
	SKU        string            `json:"sku"`
	Score      float64           `json:"score"`
	Name       string            `json:"name"`
	Material   string            `json:"material,omitempty"`
	Color      string            `json:"color,omitempty"`
	UnitPrice  float64           `json:"unitPrice,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// SearchFacets contains facet counts.
type SearchFacets struct {
	Materials []FacetCount `json:"materials,omitempty"`
	Colors    []FacetCount `json:"colors,omitempty"`
	RoomTypes []FacetCount `json:"roomTypes,omitempty"`
	Keywords  []FacetCount `json:"keywords,omitempty"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Search executes a search query against the current snapshot.
func (s *CatalogIndex) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)

	addSorting(searchRequest, params)

	if params.IncludeFacets {
		for _, field := range []string{"material", "color", "room_types", "keywords"} {
			searchRequest.AddFacet(field, bleve.NewFacetRequest(field, 20))
		}
	}

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("name")
	}

	searchRequest.Fields = []string{"sku", "name", "material", "color", "unit_price"}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &SearchResult{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]SearchHit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		searchHit := SearchHit{
			SKU:   hit.ID,
			Score: hit.Score,
		}

		if n, ok := hit.Fields["name"].(string); ok {
			searchHit.Name = n
		}
		if m, ok := hit.Fields["material"].(string); ok {
			searchHit.Material = m
		}
		if c, ok := hit.Fields["color"].(string); ok {
			searchHit.Color = c
		}
		if p, ok := hit.Fields["unit_price"].(float64); ok {
			searchHit.UnitPrice = p
		}

		if len(hit.Fragments) > 0 {
			searchHit.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					searchHit.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, searchHit)
	}

	if params.IncludeFacets {
		result.Facets = extractFacets(searchResult)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params SearchParams) query.Query {
	var queries []query.Query

	// Main text query: match name and description, with fuzzy and prefix
	// variants on name for typo tolerance and autocomplete.
	if params.Query != "" {
		textQueries := []query.Query{}

		nameMatch := bleve.NewMatchQuery(params.Query)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		descMatch := bleve.NewMatchQuery(params.Query)
		descMatch.SetField("description")
		textQueries = append(textQueries, descMatch)

		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("name")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("name")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	for _, filter := range []struct {
		field string
		terms []string
	}{
		{"material", params.Materials},
		{"color", params.Colors},
		{"room_types", params.RoomTypes},
		{"keywords", params.Keywords},
	} {
		if len(filter.terms) == 0 {
			continue
		}
		termQueries := make([]query.Query, len(filter.terms))
		for i, term := range filter.terms {
			tq := bleve.NewTermQuery(strings.ToLower(term))
			tq.SetField(filter.field)
			termQueries[i] = tq
		}
		// OR across values of one facet, AND across facets
		queries = append(queries, bleve.NewDisjunctionQuery(termQueries...))
	}

	if params.MinPrice > 0 || params.MaxPrice > 0 {
		min := params.MinPrice
		max := params.MaxPrice
		if params.MaxPrice == 0 {
			max = math.MaxFloat64
		}
		rangeQuery := bleve.NewNumericRangeQuery(&min, &max)
		rangeQuery.SetField("unit_price")
		queries = append(queries, rangeQuery)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}

// addSorting configures sort order.
func addSorting(req *bleve.SearchRequest, params SearchParams) {
	switch params.SortBy {
	case "name":
		if params.SortOrder == "desc" {
			req.SortBy([]string{"-name"})
		} else {
			req.SortBy([]string{"name"})
		}
	case "price":
		if params.SortOrder == "desc" {
			req.SortBy([]string{"-unit_price"})
		} else {
			req.SortBy([]string{"unit_price"})
		}
	default:
		// Relevance (score) is default
		req.SortBy([]string{"-_score"})
	}
}

// extractFacets converts Bleve facets to our format.
func extractFacets(result *bleve.SearchResult) SearchFacets {
	facets := SearchFacets{}

	if f, ok := result.Facets["material"]; ok {
		for _, term := range f.Terms.Terms() {
			facets.Materials = append(facets.Materials, FacetCount{Value: term.Term, Count: term.Count})
		}
	}
	if f, ok := result.Facets["color"]; ok {
		for _, term := range f.Terms.Terms() {
			facets.Colors = append(facets.Colors, FacetCount{Value: term.Term, Count: term.Count})
		}
	}
	if f, ok := result.Facets["room_types"]; ok {
		for _, term := range f.Terms.Terms() {
			facets.RoomTypes = append(facets.RoomTypes, FacetCount{Value: term.Term, Count: term.Count})
		}
	}
	if f, ok := result.Facets["keywords"]; ok {
		for _, term := range f.Terms.Terms() {
			facets.Keywords = append(facets.Keywords, FacetCount{Value: term.Term, Count: term.Count})
		}
	}

	return facets
}
