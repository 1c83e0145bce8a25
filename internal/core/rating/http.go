// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package rating

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	router.Post("/", handler.recordRating)
	router.Get("/stars", handler.listStars)
	return router
}

// recordRating handles POST /ratings. The caller's identity is the IP
// resolved by the middleware chain, never anything from the request body.
func (handler *Handler) recordRating(writer http.ResponseWriter, request *http.Request) {
	var input RecordInput

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	recorded, err := handler.service.Record(request.Context(), requestutil.ClientIP(request), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, recorded)
}

// listStars handles GET /ratings/stars.
func (handler *Handler) listStars(writer http.ResponseWriter, request *http.Request) {
	stars, err := handler.service.Stars(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stars)
}
