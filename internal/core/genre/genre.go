// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Package genre serves the genre reference data used by movie filtering.
package genre

// Genre is a movie genre. Slug is the stable filter key.
type Genre struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}
