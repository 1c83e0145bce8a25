// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package genre

import "context"

type Repository interface {
	// ListGenres returns every genre ordered by name.
	ListGenres(context context.Context) ([]*Genre, error)

	GetGenre(context context.Context, id int) (*Genre, error)
}
