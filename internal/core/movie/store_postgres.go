// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package movie

import (
	"context"
	"encoding/json"
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

// ListMovies computes the whole listing page in one grouped query.
//
// Derived fields come from aggregates over the joined rating rows:
//   - rating_user: BOOL_OR over "this row belongs to the caller" — FALSE when
//     the movie has no ratings at all (COALESCE covers the all-NULL group).
//   - middle_star: AVG of the joined star values, NULL for an unrated movie
//     so it surfaces as JSON null rather than a fake zero.
//
// The window COUNT runs after grouping and filtering, giving the total number
// of matching movies without a second round trip.
func (repository *PostgresRepository) ListMovies(context context.Context, callerIP string, f Filter, limit, offset int) ([]*ListItem, int, error) {
	mv := schema.CatalogMovie
	ct := schema.CatalogCategory
	rt := schema.SocialRating
	st := schema.SocialRatingStar

	// $1 is reserved for the caller IP used inside the BOOL_OR aggregate.
	args := []any{callerIP}
	argID := 2

	conditions := []string{fmt.Sprintf("m.%s = FALSE", mv.Draft)}

	if f.Year != nil {
		conditions = append(conditions, fmt.Sprintf("m.%s = $%d", mv.Year, argID))
		args = append(args, *f.Year)
		argID++
	}
	if f.YearMin != nil {
		conditions = append(conditions, fmt.Sprintf("m.%s >= $%d", mv.Year, argID))
		args = append(args, *f.YearMin)
		argID++
	}
	if f.YearMax != nil {
		conditions = append(conditions, fmt.Sprintf("m.%s <= $%d", mv.Year, argID))
		args = append(args, *f.YearMax)
		argID++
	}
	if f.Category != "" {
		conditions = append(conditions, fmt.Sprintf("c.%s = $%d", ct.Slug, argID))
		args = append(args, f.Category)
		argID++
	}
	if len(f.Genres) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s mg JOIN %s g ON g.%s = mg.%s WHERE mg.%s = m.%s AND g.%s = ANY($%d))",
			schema.CatalogMovieGenre.Table, schema.CatalogGenre.Table,
			schema.CatalogGenre.ID, schema.CatalogMovieGenre.GenreID,
			schema.CatalogMovieGenre.MovieID, mv.ID,
			schema.CatalogGenre.Slug, argID,
		))
		args = append(args, f.Genres)
		argID++
	}

	query := fmt.Sprintf(`
		SELECT
			m.%s, m.%s, m.%s, c.%s,
			COALESCE(BOOL_OR(r.%s = $1), FALSE) AS rating_user,
			AVG(s.%s)::float8 AS middle_star,
			COUNT(*) OVER () AS total_count
		FROM %s m
		LEFT JOIN %s c ON c.%s = m.%s
		LEFT JOIN %s r ON r.%s = m.%s
		LEFT JOIN %s s ON s.%s = r.%s
		WHERE %s
		GROUP BY m.%s, m.%s, m.%s, c.%s
		ORDER BY m.%s ASC
		LIMIT $%d OFFSET $%d
	`,
		mv.ID, mv.Title, mv.Tagline, ct.Name,
		rt.IP,
		st.Value,
		mv.Table,
		ct.Table, ct.ID, mv.CategoryID,
		rt.Table, rt.MovieID, mv.ID,
		st.Table, st.ID, rt.StarID,
		strings.Join(conditions, " AND "),
		mv.ID, mv.Title, mv.Tagline, ct.Name,
		mv.ID,
		argID, argID+1,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_movies")
	}
	defer rows.Close()

	var (
		items []*ListItem
		total int
	)
	for rows.Next() {
		item := &ListItem{}
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Tagline, &item.Category,
			&item.RatingUser, &item.MiddleStar, &total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_movie")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_movies")
	}

	return items, total, nil
}

// GetMovieDetail loads the full record in one round trip. The related
// collections are folded into JSON aggregates inside Postgres and decoded
// here, so ordering is fixed server side: people by name, shots by id.
func (repository *PostgresRepository) GetMovieDetail(context context.Context, id int) (*Detail, error) {
	mv := schema.CatalogMovie
	ct := schema.CatalogCategory
	ac := schema.CatalogActor
	sh := schema.CatalogMovieShot

	people := func(junction, movieCol, actorCol string) string {
		return fmt.Sprintf(`COALESCE((
			SELECT json_agg(json_build_object('id', a.%s, 'name', a.%s, 'image', a.%s) ORDER BY a.%s)
			FROM %s a JOIN %s j ON j.%s = a.%s
			WHERE j.%s = m.%s
		), '[]'::json)`,
			ac.ID, ac.Name, ac.ImageURL, ac.Name,
			ac.Table, junction, actorCol, ac.ID,
			movieCol, mv.ID,
		)
	}

	query := fmt.Sprintf(`
		SELECT
			m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s,
			c.%s, m.%s,
			%s AS directors,
			%s AS actors,
			COALESCE((
				SELECT array_agg(g.%s ORDER BY g.%s)
				FROM %s g JOIN %s mg ON mg.%s = g.%s
				WHERE mg.%s = m.%s
			), '{}') AS genres,
			COALESCE((
				SELECT json_agg(json_build_object('id', s.%s, 'title', s.%s, 'description', s.%s, 'image', s.%s) ORDER BY s.%s)
				FROM %s s WHERE s.%s = m.%s
			), '[]'::json) AS shots
		FROM %s m
		LEFT JOIN %s c ON c.%s = m.%s
		WHERE m.%s = $1 AND m.%s = FALSE
	`,
		mv.ID, mv.Title, mv.Tagline, mv.Description, mv.PosterURL, mv.Year, mv.Country,
		mv.WorldPremiere, mv.Budget, mv.FeesUSA, mv.FeesWorld,
		ct.Name, mv.Slug,
		people(schema.CatalogMovieDirector.Table, schema.CatalogMovieDirector.MovieID, schema.CatalogMovieDirector.ActorID),
		people(schema.CatalogMovieActor.Table, schema.CatalogMovieActor.MovieID, schema.CatalogMovieActor.ActorID),
		schema.CatalogGenre.Name, schema.CatalogGenre.Name,
		schema.CatalogGenre.Table, schema.CatalogMovieGenre.Table,
		schema.CatalogMovieGenre.GenreID, schema.CatalogGenre.ID,
		schema.CatalogMovieGenre.MovieID, mv.ID,
		sh.ID, sh.Title, sh.Description, sh.ImageURL, sh.ID,
		sh.Table, sh.MovieID, mv.ID,
		mv.Table,
		ct.Table, ct.ID, mv.CategoryID,
		mv.ID, mv.Draft,
	)

	detail := &Detail{}
	var directorsJSON, actorsJSON, shotsJSON []byte

	err := repository.db.QueryRow(context, query, id).Scan(
		&detail.ID, &detail.Title, &detail.Tagline, &detail.Description, &detail.PosterURL,
		&detail.Year, &detail.Country, &detail.WorldPremiere,
		&detail.Budget, &detail.FeesUSA, &detail.FeesWorld,
		&detail.Category, &detail.Slug,
		&directorsJSON, &actorsJSON, &detail.Genres, &shotsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Movie")
		}
		return nil, dberr.Wrap(err, "get_movie")
	}

	if err := json.Unmarshal(directorsJSON, &detail.Directors); err != nil {
		return nil, dberr.Wrap(err, "decode_directors")
	}
	if err := json.Unmarshal(actorsJSON, &detail.Actors); err != nil {
		return nil, dberr.Wrap(err, "decode_actors")
	}
	if err := json.Unmarshal(shotsJSON, &detail.Shots); err != nil {
		return nil, dberr.Wrap(err, "decode_shots")
	}
	if detail.Genres == nil {
		detail.Genres = []string{}
	}

	return detail, nil
}
