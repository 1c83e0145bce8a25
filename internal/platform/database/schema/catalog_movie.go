// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// CatalogMovieTable represents the 'catalog.movie' table
type CatalogMovieTable struct {
	Table         string
	ID            string
	Title         string
	Tagline       string
	Description   string
	PosterURL     string
	Year          string
	Country       string
	WorldPremiere string
	Budget        string
	FeesUSA       string
	FeesWorld     string
	CategoryID    string
	Slug          string
	Draft         string
}

// CatalogMovie is the schema definition for catalog.movie
var CatalogMovie = CatalogMovieTable{
	Table:         "catalog.movie",
	ID:            "id",
	Title:         "title",
	Tagline:       "tagline",
	Description:   "description",
	PosterURL:     "posterurl",
	Year:          "year",
	Country:       "country",
	WorldPremiere: "worldpremiere",
	Budget:        "budget",
	FeesUSA:       "feesusa",
	FeesWorld:     "feesworld",
	CategoryID:    "categoryid",
	Slug:          "slug",
	Draft:         "draft",
}

func (t CatalogMovieTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Tagline, t.Description, t.PosterURL, t.Year, t.Country,
		t.WorldPremiere, t.Budget, t.FeesUSA, t.FeesWorld, t.CategoryID, t.Slug, t.Draft,
	}
}
