// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package schema

// SocialRatingStarTable represents the 'social.ratingstar' reference table
type SocialRatingStarTable struct {
	Table string
	ID    string
	Value string
}

// SocialRatingStar is the schema definition for social.ratingstar
var SocialRatingStar = SocialRatingStarTable{
	Table: "social.ratingstar",
	ID:    "id",
	Value: "value",
}
