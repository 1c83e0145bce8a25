// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package actor

import "context"

type Repository interface {
	// ListActors returns one directory page plus the total match count.
	// A non-empty search narrows by case-insensitive name substring.
	ListActors(context context.Context, search string, limit, offset int) ([]*ListItem, int, error)

	GetActor(context context.Context, id int) (*Actor, error)
}
