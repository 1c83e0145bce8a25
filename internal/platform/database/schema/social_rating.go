// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// SocialRatingTable represents the 'social.rating' table
type SocialRatingTable struct {
	Table   string
	ID      string
	IP      string
	StarID  string
	MovieID string
}

// SocialRating is the schema definition for social.rating
var SocialRating = SocialRatingTable{
	Table:   "social.rating",
	ID:      "id",
	IP:      "ip",
	StarID:  "starid",
	MovieID: "movieid",
}

func (t SocialRatingTable) Columns() []string {
	return []string{t.ID, t.IP, t.StarID, t.MovieID}
}
