// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// CatalogMovieShotTable represents the 'catalog.movieshot' table
type CatalogMovieShotTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	ImageURL    string
	MovieID     string
}

// CatalogMovieShot is the schema definition for catalog.movieshot
var CatalogMovieShot = CatalogMovieShotTable{
	Table:       "catalog.movieshot",
	ID:          "id",
	Title:       "title",
	Description: "description",
	ImageURL:    "imageurl",
	MovieID:     "movieid",
}

func (t CatalogMovieShotTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.ImageURL, t.MovieID}
}
