// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Package review implements viewer reviews: threaded, append-only comments
// attached to a movie.
//
// Reviews form a forest per movie. A review with no parent is a root; children
// reference their parent's id. Deleting a parent nulls the reference (the
// subtree survives and its top node becomes a root), so depth is unbounded
// but cycles are impossible: a parent must already exist at creation time.
package review

import "time"

// Review is a single stored review row.
type Review struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	ParentID  *int      `json:"parent"`
	MovieID   int       `json:"movie"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateInput is the public write payload for POST /reviews.
type CreateInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	MovieID  int    `json:"movie"`
	ParentID *int   `json:"parent"`
}

// Node is one element of the serialized review forest. Every level of the
// tree uses this same shape.
type Node struct {
	Name     string  `json:"name"`
	Text     string  `json:"text"`
	Children []*Node `json:"children"`
}

const (
	FieldEmail  = "email"
	FieldName   = "name"
	FieldText   = "text"
	FieldMovie  = "movie"
	FieldParent = "parent"

	// MaxNameLen bounds the display name.
	MaxNameLen = 100
	// MaxTextLen bounds the review body.
	MaxTextLen = 5000
)
