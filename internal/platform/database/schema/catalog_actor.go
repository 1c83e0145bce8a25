// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// CatalogActorTable represents the 'catalog.actor' table
type CatalogActorTable struct {
	Table       string
	ID          string
	Name        string
	Age         string
	Description string
	ImageURL    string
}

// CatalogActor is the schema definition for catalog.actor
var CatalogActor = CatalogActorTable{
	Table:       "catalog.actor",
	ID:          "id",
	Name:        "name",
	Age:         "age",
	Description: "description",
	ImageURL:    "imageurl",
}

func (t CatalogActorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Age, t.Description, t.ImageURL}
}
