// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package actor

import (
	"context"
	"errors"
	"fmt"

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

func (repository *PostgresRepository) ListActors(context context.Context, search string, limit, offset int) ([]*ListItem, int, error) {
	at := schema.CatalogActor

	condition := "TRUE"
	args := []any{}
	argID := 1
	if search != "" {
		condition = fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", at.Name, argID)
		args = append(args, search)
		argID++
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, COUNT(*) OVER () AS total_count
		FROM %s
		WHERE %s
		ORDER BY %s ASC, %s ASC
		LIMIT $%d OFFSET $%d
	`,
		at.ID, at.Name, at.ImageURL,
		at.Table,
		condition,
		at.Name, at.ID,
		argID, argID+1,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_actors")
	}
	defer rows.Close()

	var (
		items []*ListItem
		total int
	)
	for rows.Next() {
		item := &ListItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.ImageURL, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_actor")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_actors")
	}

	return items, total, nil
}

func (repository *PostgresRepository) GetActor(context context.Context, id int) (*Actor, error) {
	at := schema.CatalogActor

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		at.ID, at.Name, at.Age, at.Description, at.ImageURL,
		at.Table, at.ID,
	)

	found := &Actor{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&found.ID, &found.Name, &found.Age, &found.Description, &found.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Actor")
		}
		return nil, dberr.Wrap(err, "get_actor")
	}

	return found, nil
}
