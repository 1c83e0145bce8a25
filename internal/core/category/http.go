// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package category

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
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)
	return router
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if categories == nil {
		categories = []*Category{}
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.IntParam(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Category"))
		return
	}

	c, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, c)
}
