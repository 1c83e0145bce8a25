// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinoteka/kinoteka/internal/platform/apperr"
	requestutil "github.com/kinoteka/kinoteka/internal/platform/request"
	"github.com/kinoteka/kinoteka/internal/platform/respond"
	"github.com/kinoteka/kinoteka/pkg/convert"
	"github.com/kinoteka/kinoteka/pkg/pagination"
	"github.com/kinoteka/kinoteka/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listMovies)
	router.Get("/{id}", handler.getMovie)
	return router
}

// listMovies handles GET /movies.
//
// Query parameters: page, limit, year, year_min, year_max, category and a
// repeatable genre. Filter values that do not parse are ignored rather than
// rejected, matching the tolerant listing contract.
func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	filter := Filter{
		Year:     positiveIntQuery(query.Get("year")),
		YearMin:  positiveIntQuery(query.Get("year_min")),
		YearMax:  positiveIntQuery(query.Get("year_max")),
		Genres:   query["genre"],
		Category: query.Get("category"),
	}

	items, total, err := handler.service.List(
		request.Context(), requestutil.ClientIP(request), filter, params.Limit, params.Offset(),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if items == nil {
		items = []*ListItem{}
	}
	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

// getMovie handles GET /movies/{id}. A malformed id cannot address any movie,
// so it gets the same 404 as a missing one.
func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.IntParam(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Movie"))
		return
	}

	detail, err := handler.service.GetDetail(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

// positiveIntQuery parses an optional positive-integer query value.
func positiveIntQuery(raw string) *int {
	if v := convert.ToInt(raw); v > 0 {
		return pointer.To(v)
	}
	return nil
}
