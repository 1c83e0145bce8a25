// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package actor

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinoteka/kinoteka/internal/platform/apperr"
	requestutil "github.com/kinoteka/kinoteka/internal/platform/request"
	"github.com/kinoteka/kinoteka/internal/platform/respond"
	"github.com/kinoteka/kinoteka/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listActors)
	router.Get("/{id}", handler.getActor)
	return router
}

// listActors handles GET /actors with optional q name search.
func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.List(
		request.Context(), request.URL.Query().Get("q"), params.Limit, params.Offset(),
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

// getActor handles GET /actors/{id}.
func (handler *Handler) getActor(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.IntParam(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Actor"))
		return
	}

	found, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}
