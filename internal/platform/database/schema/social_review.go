// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// SocialReviewTable represents the 'social.review' table
type SocialReviewTable struct {
	Table     string
	ID        string
	Email     string
	Name      string
	Text      string
	ParentID  string
	MovieID   string
	CreatedAt string
}

// SocialReview is the schema definition for social.review
var SocialReview = SocialReviewTable{
	Table:     "social.review",
	ID:        "id",
	Email:     "email",
	Name:      "name",
	Text:      "text",
	ParentID:  "parentid",
	MovieID:   "movieid",
	CreatedAt: "createdat",
}

func (t SocialReviewTable) Columns() []string {
	return []string{t.ID, t.Email, t.Name, t.Text, t.ParentID, t.MovieID, t.CreatedAt}
}
