// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Package schema centralizes table and column names for every relation the
// repositories touch. Queries are assembled from these constants so a rename
// is a one-file change.
package schema

// CatalogCategoryTable represents the 'catalog.category' table
type CatalogCategoryTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Slug        string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogCategoryTable{
	Table:       "catalog.category",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Slug:        "slug",
}

func (t CatalogCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Slug}
}
