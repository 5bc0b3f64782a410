package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yancarpet/storefront/internal/http/response"
	"github.com/yancarpet/storefront/internal/search"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.services.Catalog.Items(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, items, s.logger)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.services.Catalog.Get(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, item, s.logger)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := search.DefaultSearchParams()
	params.Query = q.Get("q")
	params.Materials = q["material"]
	params.Colors = q["color"]
	params.RoomTypes = q["room"]
	params.Keywords = q["keyword"]
	params.MinPrice = queryFloat(r, "minPrice", 0)
	params.MaxPrice = queryFloat(r, "maxPrice", 0)
	params.Limit = queryInt(r, "limit", params.Limit)
	params.Offset = queryInt(r, "offset", 0)
	params.SortBy = q.Get("sort")
	params.SortOrder = q.Get("order")

	result, err := s.services.Catalog.Search(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, result, s.logger)
}

func (s *Server) handleSearchRemote(w http.ResponseWriter, r *http.Request) {
	items, err := s.services.Catalog.SearchRemote(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, items, s.logger)
}

func (s *Server) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.services.Catalog.FilterOptions(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, opts, s.logger)
}

func (s *Server) handleCatalogRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Catalog.Refresh(r.Context()); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, map[string]uint64{"generation": s.services.Catalog.Generation()}, s.logger)
}
