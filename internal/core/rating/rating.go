// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

// Package rating implements per-caller movie ratings.
//
// Callers are identified by IP address only; there are no accounts. Each
// (ip, movie) pair holds at most one rating row — repeat votes overwrite the
// star value in place via an atomic upsert, so concurrent votes from the same
// caller can never produce duplicates.
package rating

// Star is one row of the star reference table (values 1..5).
type Star struct {
	ID    int `json:"id"`
	Value int `json:"value"`
}

// Rating is a stored vote. StarValue is resolved for the response; the row
// itself references the star table by id.
type Rating struct {
	ID        int    `json:"id"`
	IP        string `json:"-"`
	StarID    int    `json:"-"`
	StarValue int    `json:"star"`
	MovieID   int    `json:"movie"`
}

// RecordInput is the public write payload for POST /ratings. Star carries the
// star value (1..5), not a reference table id.
type RecordInput struct {
	Star    int `json:"star"`
	MovieID int `json:"movie"`
}

const (
	FieldStar  = "star"
	FieldMovie = "movie"
)
