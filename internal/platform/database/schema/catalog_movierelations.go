// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// CatalogMovieDirectorTable represents the 'catalog.moviedirector' junction table.
// Directors draw from the same actor entity set as the cast.
type CatalogMovieDirectorTable struct {
	Table   string
	MovieID string
	ActorID string
}

// CatalogMovieDirector is the schema definition for catalog.moviedirector
var CatalogMovieDirector = CatalogMovieDirectorTable{
	Table:   "catalog.moviedirector",
	MovieID: "movieid",
	ActorID: "actorid",
}

// CatalogMovieActorTable represents the 'catalog.movieactor' junction table
type CatalogMovieActorTable struct {
	Table   string
	MovieID string
	ActorID string
}

// CatalogMovieActor is the schema definition for catalog.movieactor
var CatalogMovieActor = CatalogMovieActorTable{
	Table:   "catalog.movieactor",
	MovieID: "movieid",
	ActorID: "actorid",
}

// CatalogMovieGenreTable represents the 'catalog.moviegenre' junction table
type CatalogMovieGenreTable struct {
	Table   string
	MovieID string
	GenreID string
}

// CatalogMovieGenre is the schema definition for catalog.moviegenre
var CatalogMovieGenre = CatalogMovieGenreTable{
	Table:   "catalog.moviegenre",
	MovieID: "movieid",
	GenreID: "genreid",
}
