// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package genre

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

func (repository *PostgresRepository) ListGenres(context context.Context) ([]*Genre, error) {
	gt := schema.CatalogGenre

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(gt.Columns(), ", "), gt.Table, gt.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	var genres []*Genre
	for rows.Next() {
		g := &Genre{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, rows.Err()
}

func (repository *PostgresRepository) GetGenre(context context.Context, id int) (*Genre, error) {
	gt := schema.CatalogGenre

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(gt.Columns(), ", "), gt.Table, gt.ID,
	)

	g := &Genre{}
	err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Name, &g.Description, &g.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Genre")
		}
		return nil, dberr.Wrap(err, "get_genre")
	}

	return g, nil
}
