// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kinoteka/kinoteka/internal/platform/apperr"
	requestutil "github.com/kinoteka/kinoteka/internal/platform/request"
	"github.com/kinoteka/kinoteka/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listGenres)
	router.Get("/{id}", handler.getGenre)
	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if genres == nil {
		genres = []*Genre{}
	}
	respond.OK(writer, genres)
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.IntParam(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Genre"))
		return
	}

	g, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, g)
}
