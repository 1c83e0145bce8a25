// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Package category serves the top-level catalogue sections (films, series).
package category

// Category is a catalogue section. A movie belongs to at most one.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}
