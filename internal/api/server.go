// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

/*
Package api assembles the HTTP surface of the Kinoteka service.

It wires the domain handlers into a single chi router behind the standard
middleware chain and exposes the operational endpoints (health, readiness).
*/
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/kinoteka/kinoteka/internal/core/actor"
	"github.com/kinoteka/kinoteka/internal/core/category"
	"github.com/kinoteka/kinoteka/internal/core/genre"
	"github.com/kinoteka/kinoteka/internal/core/movie"
	"github.com/kinoteka/kinoteka/internal/core/rating"
	"github.com/kinoteka/kinoteka/internal/core/review"
	"github.com/kinoteka/kinoteka/internal/platform/config"
	"github.com/kinoteka/kinoteka/internal/platform/constants"
	"github.com/kinoteka/kinoteka/internal/platform/middleware"
)

// Server aggregates the application dependencies behind one HTTP handler.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *pgxpool.Pool
	cache   *goredis.Client
	limiter middleware.SharedLimiter

	movies     *movie.Handler
	reviews    *review.Handler
	ratings    *rating.Handler
	actors     *actor.Handler
	genres     *genre.Handler
	categories *category.Handler
}

// NewServer wires every domain vertically: postgres repository, service,
// HTTP handler. The review service doubles as the movie detail's review
// source.
func NewServer(cfg *config.Config, logger *slog.Logger, db *pgxpool.Pool, cache *goredis.Client, limiter middleware.SharedLimiter) *Server {
	reviewService := review.NewService(review.NewPostgresRepository(db), logger)
	movieService := movie.NewService(movie.NewPostgresRepository(db), reviewService, logger)
	ratingService := rating.NewService(rating.NewPostgresRepository(db), logger)
	actorService := actor.NewService(actor.NewPostgresRepository(db), logger)
	genreService := genre.NewService(genre.NewPostgresRepository(db), logger)
	categoryService := category.NewService(category.NewPostgresRepository(db), logger)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		cache:   cache,
		limiter: limiter,

		movies:     movie.NewHandler(movieService),
		reviews:    review.NewHandler(reviewService),
		ratings:    rating.NewHandler(ratingService),
		actors:     actor.NewHandler(actorService),
		genres:     genre.NewHandler(genreService),
		categories: category.NewHandler(categoryService),
	}
}

// Router builds the complete middleware chain and route table.
//
// The passed context bounds background goroutines started by the chain (rate
// limiter cleanup) to the application lifetime.
func (server *Server) Router(ctx context.Context) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(server.logger))
	router.Use(chimw.CleanPath)
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(ctx, server.limiter))
	router.Use(middleware.PanicRecovery(server.logger))
	router.Use(middleware.ClientIP())
	router.Use(middleware.CORS(server.cfg))

	// Operational endpoints live outside the versioned API surface.
	router.Get("/health", server.handleHealth)
	router.Get("/ready", server.handleReady)

	router.Route("/api/v1", func(api chi.Router) {
		api.Mount("/movies", server.movies.Routes())
		api.Mount("/reviews", server.reviews.Routes())
		api.Mount("/ratings", server.ratings.Routes())
		api.Mount("/actors", server.actors.Routes())
		api.Mount("/genres", server.genres.Routes())
		api.Mount("/categories", server.categories.Routes())
	})

	return router
}
