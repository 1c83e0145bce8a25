// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kinoteka/kinoteka/internal/platform/apperr"
	"github.com/kinoteka/kinoteka/internal/platform/database/schema"
	"github.com/kinoteka/kinoteka/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	ct := schema.CatalogCategory

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(ct.Columns(), ", "), ct.Table, ct.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (repository *PostgresRepository) GetCategory(context context.Context, id int) (*Category, error) {
	ct := schema.CatalogCategory

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(ct.Columns(), ", "), ct.Table, ct.ID,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Category")
		}
		return nil, dberr.Wrap(err, "get_category")
	}

	return c, nil
}
