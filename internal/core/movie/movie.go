// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Package movie implements the public movie catalogue: the listing with its
// per-caller derived fields and the full detail view.
//
// Movies flagged as drafts are invisible on every public read path, including
// direct id lookup.
package movie

import (
	"time"

	"github.com/kinoteka/kinoteka/internal/core/review"
	"github.com/kinoteka/kinoteka/pkg/slug"
)

// ListItem is one row of the public listing.
//
// RatingUser and MiddleStar are derived at query time from the rating rows:
// RatingUser is scoped to the requesting caller's IP, MiddleStar is the
// average star value across all callers and is null (not zero) for a movie
// nobody has rated yet.
type ListItem struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Tagline    string   `json:"tagline"`
	Category   *string  `json:"category"`
	RatingUser bool     `json:"rating_user"`
	MiddleStar *float64 `json:"middle_star"`
}

// CastMember is the shallow actor projection used for directors and cast.
type CastMember struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image"`
}

// Shot is a still frame attached to a movie.
type Shot struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image"`
}

// Detail is the full public movie record. The draft flag is deliberately
// absent: drafts never reach this type.
type Detail struct {
	ID            int            `json:"id"`
	Title         string         `json:"title"`
	Tagline       string         `json:"tagline"`
	Description   string         `json:"description"`
	PosterURL     *string        `json:"poster"`
	Year          int            `json:"year"`
	Country       string         `json:"country"`
	WorldPremiere time.Time      `json:"world_premiere"`
	Budget        int64          `json:"budget"`
	FeesUSA       int64          `json:"fees_in_usa"`
	FeesWorld     int64          `json:"fees_in_world"`
	Category      *string        `json:"category"`
	Slug          string         `json:"slug"`
	Directors     []CastMember   `json:"directors"`
	Actors        []CastMember   `json:"actors"`
	Genres        []string       `json:"genres"`
	Shots         []Shot         `json:"shots"`
	Reviews       []*review.Node `json:"reviews"`
}

// Filter narrows the listing before the derived fields are computed.
// Genre and category values are slugs.
type Filter struct {
	Year     *int
	YearMin  *int
	YearMax  *int
	Genres   []string
	Category string
}

// normalize runs caller-supplied genre/category values through the slug
// pipeline so "Sci-Fi" and "sci-fi" address the same rows.
func (f Filter) normalize() Filter {
	out := f
	if f.Category != "" {
		out.Category = slug.From(f.Category)
	}
	if len(f.Genres) > 0 {
		out.Genres = make([]string, 0, len(f.Genres))
		for _, g := range f.Genres {
			if normalized := slug.From(g); normalized != "" {
				out.Genres = append(out.Genres, normalized)
			}
		}
	}
	return out
}
