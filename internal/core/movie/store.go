// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package movie

import "context"

type Repository interface {
	// ListMovies returns the non-draft listing with derived fields computed
	// for callerIP, plus the total row count for pagination.
	ListMovies(context context.Context, callerIP string, f Filter, limit, offset int) ([]*ListItem, int, error)

	// GetMovieDetail returns the full record for a non-draft movie, without
	// the review forest (the service attaches it).
	GetMovieDetail(context context.Context, id int) (*Detail, error)
}
