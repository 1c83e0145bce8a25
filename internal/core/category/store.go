// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package category

import "context"

type Repository interface {
	// ListCategories returns every category ordered by name.
	ListCategories(context context.Context) ([]*Category, error)

	GetCategory(context context.Context, id int) (*Category, error)
}
