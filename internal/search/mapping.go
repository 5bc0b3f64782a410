package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for catalog documents.
//
// Priorities:
//  1. Full-text search on name and description with English stemming
//  2. Exact keyword matching for material, color, room type and keyword facets
//  3. Numeric range queries on price
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields (full-text searchable) ---

	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = en.AnalyzerName
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// Description - searchable but not stored (can be long)
	descFieldMapping := bleve.NewTextFieldMapping()
	descFieldMapping.Analyzer = en.AnalyzerName
	descFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("description", descFieldMapping)

	// --- Keyword fields (exact match, facetable) ---

	skuFieldMapping := bleve.NewTextFieldMapping()
	skuFieldMapping.Analyzer = keyword.Name
	skuFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("sku", skuFieldMapping)

	materialFieldMapping := bleve.NewTextFieldMapping()
	materialFieldMapping.Analyzer = keyword.Name
	materialFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("material", materialFieldMapping)

	colorFieldMapping := bleve.NewTextFieldMapping()
	colorFieldMapping.Analyzer = keyword.Name
	colorFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("color", colorFieldMapping)

	roomTypesFieldMapping := bleve.NewTextFieldMapping()
	roomTypesFieldMapping.Analyzer = keyword.Name
	roomTypesFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("room_types", roomTypesFieldMapping)

	// Keyword analyzer keeps compound terms intact (e.g., "flat-weave")
	keywordsFieldMapping := bleve.NewTextFieldMapping()
	keywordsFieldMapping.Analyzer = keyword.Name
	keywordsFieldMapping.Store = true
	keywordsFieldMapping.IncludeTermVectors = true // For faceting
	docMapping.AddFieldMappingsAt("keywords", keywordsFieldMapping)

	// --- Numeric fields (range queries, sorting) ---

	priceFieldMapping := bleve.NewNumericFieldMapping()
	priceFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("unit_price", priceFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
