// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Package actor serves the people directory. Directors and cast share one
// entity set; the movie junction tables decide the role.
package actor

// Actor is the full public record.
type Actor struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image"`
}

// ListItem is the shallow projection used by the directory listing.
type ListItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image"`
}
