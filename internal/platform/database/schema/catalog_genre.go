// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// CatalogGenreTable represents the 'catalog.genre' table
type CatalogGenreTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Slug        string
}

// CatalogGenre is the schema definition for catalog.genre
var CatalogGenre = CatalogGenreTable{
	Table:       "catalog.genre",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Slug:        "slug",
}

func (t CatalogGenreTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Slug}
}
